package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-integrations/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		ID:            "ord-1",
		PublicID:      "pub-1",
		CheckoutURL:   "https://checkout.example.com/pub-1",
		Status:        domain.CheckoutStatusPending,
		Amount:        4999,
		Currency:      "EUR",
		CustomerEmail: "buyer@example.com",
		Reference:     "ORD-42",
		SuccessURL:    "https://shop.example.com/thanks",
		Simulated:     true,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func sessionRow(s *domain.CheckoutSession) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "public_id", "checkout_url", "status", "amount", "currency",
		"customer_email", "reference", "success_url", "simulated", "created_at",
	}).AddRow(
		s.ID, s.PublicID, s.CheckoutURL, s.Status, s.Amount, s.Currency,
		s.CustomerEmail, s.Reference, s.SuccessURL, s.Simulated, s.CreatedAt,
	)
}

func TestCheckoutSessionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := newTestSession()
	mock.ExpectExec("INSERT INTO checkout_sessions").
		WithArgs(s.ID, s.PublicID, s.CheckoutURL, s.Status, s.Amount, s.Currency,
			s.CustomerEmail, s.Reference, s.SuccessURL, s.Simulated, s.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewCheckoutSessionRepo(mock).Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutSessionRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := newTestSession()
	mock.ExpectQuery("SELECT .+ FROM checkout_sessions WHERE reference").
		WithArgs("ORD-42").
		WillReturnRows(sessionRow(s))

	got, err := NewCheckoutSessionRepo(mock).GetByReference(context.Background(), "ORD-42")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestCheckoutSessionRepo_GetByPublicID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM checkout_sessions WHERE public_id").
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	got, err := NewCheckoutSessionRepo(mock).GetByPublicID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckoutSessionRepo_UpdateStatusByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE checkout_sessions SET status").
		WithArgs(domain.CheckoutStatusCompleted, pgxmock.AnyArg(), "ORD-42").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewCheckoutSessionRepo(mock).UpdateStatusByReference(context.Background(), "ORD-42", domain.CheckoutStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
