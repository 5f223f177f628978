package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-integrations/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ShipmentRepo implements ports.ShipmentRepository.
type ShipmentRepo struct {
	pool Pool
}

func NewShipmentRepo(pool Pool) *ShipmentRepo {
	return &ShipmentRepo{pool: pool}
}

func (r *ShipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	query := `INSERT INTO shipments (id, order_reference, provider, mode, tracking_number, document_url, cost, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.OrderReference, s.Provider, s.Mode, s.TrackingNumber,
		s.DocumentURL, s.Cost, s.Currency, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByTrackingNumber returns the most recent shipment with the number.
// Consolidated sea bookings share one booking reference across orders.
func (r *ShipmentRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	query := `SELECT id, order_reference, provider, mode, tracking_number, document_url, cost, currency, status, created_at, updated_at
		FROM shipments WHERE tracking_number = $1 ORDER BY created_at DESC LIMIT 1`

	s := &domain.Shipment{}
	err := r.pool.QueryRow(ctx, query, trackingNumber).Scan(
		&s.ID, &s.OrderReference, &s.Provider, &s.Mode, &s.TrackingNumber,
		&s.DocumentURL, &s.Cost, &s.Currency, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment by tracking number: %w", err)
	}
	return s, nil
}

func (r *ShipmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	query := `UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shipment not found: %s", id)
	}
	return nil
}
