package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-integrations/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const checkoutSessionColumns = `id, public_id, checkout_url, status, amount, currency, customer_email, reference, success_url, simulated, created_at`

// CheckoutSessionRepo implements ports.CheckoutSessionRepository.
type CheckoutSessionRepo struct {
	pool Pool
}

func NewCheckoutSessionRepo(pool Pool) *CheckoutSessionRepo {
	return &CheckoutSessionRepo{pool: pool}
}

// Create inserts a new checkout session.
func (r *CheckoutSessionRepo) Create(ctx context.Context, s *domain.CheckoutSession) error {
	query := `INSERT INTO checkout_sessions (` + checkoutSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.PublicID, s.CheckoutURL, s.Status,
		s.Amount, s.Currency, s.CustomerEmail, s.Reference,
		s.SuccessURL, s.Simulated, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkout session: %w", err)
	}
	return nil
}

func (r *CheckoutSessionRepo) GetByReference(ctx context.Context, reference string) (*domain.CheckoutSession, error) {
	query := `SELECT ` + checkoutSessionColumns + ` FROM checkout_sessions WHERE reference = $1`
	s, err := r.scan(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		return nil, fmt.Errorf("get checkout session by reference: %w", err)
	}
	return s, nil
}

func (r *CheckoutSessionRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.CheckoutSession, error) {
	query := `SELECT ` + checkoutSessionColumns + ` FROM checkout_sessions WHERE public_id = $1`
	s, err := r.scan(r.pool.QueryRow(ctx, query, publicID))
	if err != nil {
		return nil, fmt.Errorf("get checkout session by public_id: %w", err)
	}
	return s, nil
}

// UpdateStatusByReference sets the session status. A reference with no
// session is not an error: checkouts may be opened outside this service.
func (r *CheckoutSessionRepo) UpdateStatusByReference(ctx context.Context, reference string, status domain.CheckoutStatus) error {
	query := `UPDATE checkout_sessions SET status = $1, updated_at = $2 WHERE reference = $3`

	if _, err := r.pool.Exec(ctx, query, status, time.Now().UTC(), reference); err != nil {
		return fmt.Errorf("update checkout session status: %w", err)
	}
	return nil
}

// scan returns nil, nil for a missing row.
func (r *CheckoutSessionRepo) scan(row pgx.Row) (*domain.CheckoutSession, error) {
	s := &domain.CheckoutSession{}
	err := row.Scan(
		&s.ID, &s.PublicID, &s.CheckoutURL, &s.Status,
		&s.Amount, &s.Currency, &s.CustomerEmail, &s.Reference,
		&s.SuccessURL, &s.Simulated, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}
