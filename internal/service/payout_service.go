package service

import (
	"context"
	"errors"
	"strings"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultPayoutLimit = 20
	maxPayoutLimit     = 100
)

// PayoutServiceImpl implements ports.PayoutService.
type PayoutServiceImpl struct {
	payouts ports.BusinessPayouts
	repo    ports.PayoutRepository
	enc     ports.EncryptionService
	log     zerolog.Logger
}

// NewPayoutService creates the payout service. enc encrypts IBANs before
// they are stored.
func NewPayoutService(payouts ports.BusinessPayouts, repo ports.PayoutRepository, enc ports.EncryptionService, log zerolog.Logger) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		payouts: payouts,
		repo:    repo,
		enc:     enc,
		log:     log.With().Str("component", "payouts").Logger(),
	}
}

// CreatePayout validates in, sends the transfer and keeps a record with the
// IBAN encrypted at rest.
func (s *PayoutServiceImpl) CreatePayout(ctx context.Context, in ports.PayoutInput) (*domain.Payout, error) {
	in.Currency = normalizeCurrency(in.Currency)
	in.IBAN = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(in.IBAN), " ", ""))
	in.BIC = strings.ToUpper(strings.TrimSpace(in.BIC))

	extra := map[string]string{}
	checkMinorUnits("amount", in.Amount, extra)
	if err := mergeFields(validateStruct(in), extra); err != nil {
		return nil, err
	}

	var ibanEncrypted string
	if in.IBAN != "" {
		var err error
		if ibanEncrypted, err = s.enc.Encrypt(in.IBAN); err != nil {
			return nil, apperror.ErrEncryptionFailure(err)
		}
	}

	payout, err := s.payouts.CreatePayout(ctx, domain.PayoutRequest{
		BeneficiaryName:  in.BeneficiaryName,
		BeneficiaryEmail: in.BeneficiaryEmail,
		IBAN:             in.IBAN,
		BIC:              in.BIC,
		Amount:           toMinorUnits(in.Amount),
		Currency:         in.Currency,
		Reference:        in.Reference,
	})
	if err != nil {
		s.log.Error().Err(err).Str("reference", in.Reference).Msg("payout failed")
		return nil, providerError(err)
	}

	payout.IBANEncrypted = ibanEncrypted
	if err := s.repo.Create(ctx, payout); err != nil {
		s.log.Error().Err(err).
			Str("payout_id", payout.ID).
			Str("reference", payout.Reference).
			Msg("payout sent but not persisted")
	}
	return payout, nil
}

// ListPayouts returns recent payouts from the processor.
func (s *PayoutServiceImpl) ListPayouts(ctx context.Context, limit int) ([]domain.Payout, error) {
	payouts, err := s.payouts.ListPayouts(ctx, clampLimit(limit, defaultPayoutLimit, maxPayoutLimit))
	if err != nil {
		return nil, providerError(err)
	}
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	return payouts, nil
}

// providerError keeps classified errors and wraps the rest as internal.
func providerError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(err)
}
