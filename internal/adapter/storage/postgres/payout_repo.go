package postgres

import (
	"context"
	"fmt"

	"marketplace-integrations/internal/core/domain"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	pool Pool
}

func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

// Create stores a sent payout. The IBAN column only ever holds ciphertext.
func (r *PayoutRepo) Create(ctx context.Context, p *domain.Payout) error {
	query := `INSERT INTO payouts (id, state, beneficiary_name, beneficiary_email, iban_encrypted, bic, amount, currency, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.State, p.BeneficiaryName, p.BeneficiaryEmail, p.IBANEncrypted,
		p.BIC, p.Amount, p.Currency, p.Reference, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}
