package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/core/ports/mocks"
	"marketplace-integrations/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type payoutTestDeps struct {
	svc     *PayoutServiceImpl
	payouts *mocks.MockBusinessPayouts
	repo    *mocks.MockPayoutRepository
	enc     *mocks.MockEncryptionService
}

func setupPayoutService(t *testing.T) *payoutTestDeps {
	ctrl := gomock.NewController(t)
	d := &payoutTestDeps{
		payouts: mocks.NewMockBusinessPayouts(ctrl),
		repo:    mocks.NewMockPayoutRepository(ctrl),
		enc:     mocks.NewMockEncryptionService(ctrl),
	}
	d.svc = NewPayoutService(d.payouts, d.repo, d.enc, newTestLogger())
	return d
}

func validPayoutInput() ports.PayoutInput {
	return ports.PayoutInput{
		BeneficiaryEmail: "seller@example.com",
		BeneficiaryName:  "Seller GmbH",
		IBAN:             "de89 3704 0044 0532 0130 00",
		BIC:              "cobadeffxxx",
		Amount:           decimal.RequireFromString("120.50"),
		Reference:        "PAYOUT-1",
	}
}

func TestPayoutService_CreatePayout_Success(t *testing.T) {
	d := setupPayoutService(t)
	ctx := context.Background()

	d.enc.EXPECT().Encrypt("DE89370400440532013000").Return("ciphertext", nil)
	d.payouts.EXPECT().CreatePayout(ctx, domain.PayoutRequest{
		BeneficiaryName:  "Seller GmbH",
		BeneficiaryEmail: "seller@example.com",
		IBAN:             "DE89370400440532013000",
		BIC:              "COBADEFFXXX",
		Amount:           12050,
		Currency:         "EUR",
		Reference:        "PAYOUT-1",
	}).Return(&domain.Payout{ID: "tx-1", State: "pending", Amount: 12050, Currency: "EUR", Reference: "PAYOUT-1", CreatedAt: time.Now()}, nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Payout) error {
		assert.Equal(t, "ciphertext", p.IBANEncrypted)
		return nil
	})

	got, err := d.svc.CreatePayout(ctx, validPayoutInput())
	require.NoError(t, err)
	assert.Equal(t, "tx-1", got.ID)
	assert.Equal(t, "pending", got.State)
}

func TestPayoutService_CreatePayout_Validation(t *testing.T) {
	d := setupPayoutService(t)

	in := validPayoutInput()
	in.BeneficiaryEmail = "not-an-email"
	in.IBAN = "DE00 0000"
	in.Amount = decimal.RequireFromString("-1")
	in.Currency = "EURO"

	_, err := d.svc.CreatePayout(context.Background(), in)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "beneficiary_email")
	assert.Contains(t, fields, "iban")
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "currency")
}

func TestPayoutService_CreatePayout_ProviderErrorKeepsProvider(t *testing.T) {
	d := setupPayoutService(t)
	ctx := context.Background()

	in := validPayoutInput()
	in.IBAN = ""
	d.payouts.EXPECT().CreatePayout(ctx, gomock.Any()).
		Return(nil, apperror.ErrProviderUnavailable("revolut_business", 422, errors.New("bad receiver")))

	_, err := d.svc.CreatePayout(ctx, in)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRV_001", appErr.Code)
	assert.Equal(t, "revolut_business", appErr.Provider)
}

func TestPayoutService_CreatePayout_EncryptionFailureSendsNothing(t *testing.T) {
	d := setupPayoutService(t)

	d.enc.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("bad key"))

	_, err := d.svc.CreatePayout(context.Background(), validPayoutInput())
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestPayoutService_CreatePayout_PersistFailureStillReturnsPayout(t *testing.T) {
	d := setupPayoutService(t)
	ctx := context.Background()

	d.enc.EXPECT().Encrypt(gomock.Any()).Return("ciphertext", nil)
	d.payouts.EXPECT().CreatePayout(ctx, gomock.Any()).Return(&domain.Payout{ID: "tx-2"}, nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

	got, err := d.svc.CreatePayout(ctx, validPayoutInput())
	require.NoError(t, err)
	assert.Equal(t, "tx-2", got.ID)
}

func TestPayoutService_ListPayouts_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, 20},
		{"negative", -5, 20},
		{"within range", 7, 7},
		{"capped", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupPayoutService(t)
			d.payouts.EXPECT().ListPayouts(gomock.Any(), tt.want).Return(nil, nil)

			got, err := d.svc.ListPayouts(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}
