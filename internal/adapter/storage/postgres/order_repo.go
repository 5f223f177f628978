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

// OrderRepo implements ports.OrderRepository over the storefront's orders
// table.
type OrderRepo struct {
	pool Pool
}

func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByReference fetches an order by its human-readable reference.
func (r *OrderRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `SELECT id, reference, status, updated_at FROM orders WHERE reference = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, reference).Scan(&o.ID, &o.Reference, &o.Status, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by reference: %w", err)
	}
	return o, nil
}

// UpdateStatus is a compare-and-set on the order status, so concurrent
// deliveries cannot move an order backwards.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, to, time.Now().UTC(), id, from)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
