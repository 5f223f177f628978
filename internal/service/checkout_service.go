package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	idempotencyTTL  = 24 * time.Hour
	defaultCurrency = "EUR"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	merchant ports.MerchantPayments
	sessions ports.CheckoutSessionRepository
	cache    ports.IdempotencyCache
	log      zerolog.Logger
}

// NewCheckoutService creates the checkout service. cache is the Redis
// layer of the reference idempotency check; sessions is the durable layer.
func NewCheckoutService(
	merchant ports.MerchantPayments,
	sessions ports.CheckoutSessionRepository,
	cache ports.IdempotencyCache,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		merchant: merchant,
		sessions: sessions,
		cache:    cache,
		log:      log.With().Str("component", "checkout").Logger(),
	}
}

// cachedSession is the idempotency cache record. It keeps the fields the
// public JSON form of a session omits.
type cachedSession struct {
	domain.CheckoutSession
	SuccessURL string `json:"success_url"`
	Simulated  bool   `json:"simulated"`
}

func checkoutIdempotencyKey(reference string) string {
	return "checkout:" + reference
}

// CreateCheckout validates the request and opens a hosted checkout. A
// reference seen before returns the stored session without calling the
// processor. Order state is never touched here.
func (s *CheckoutServiceImpl) CreateCheckout(ctx context.Context, in ports.CheckoutInput) (*domain.CheckoutSession, error) {
	in.Currency = normalizeCurrency(in.Currency)
	in.Reference = strings.TrimSpace(in.Reference)
	in.Customer.Email = strings.TrimSpace(in.Customer.Email)

	extra := map[string]string{}
	checkMinorUnits("amount", in.Amount, extra)
	if err := mergeFields(validateStruct(in), extra); err != nil {
		return nil, err
	}

	key := checkoutIdempotencyKey(in.Reference)

	// Layer 1: Redis
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		var rec cachedSession
		if err := json.Unmarshal(cached, &rec); err == nil {
			session := rec.CheckoutSession
			session.SuccessURL, session.Simulated = rec.SuccessURL, rec.Simulated
			return &session, nil
		}
		s.log.Warn().Str("key", key).Msg("unreadable idempotency cache entry, ignoring")
	}

	// Layer 2: DB
	existing, err := s.sessions.GetByReference(ctx, in.Reference)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("checkout idempotency lookup: %w", err))
	}
	if existing != nil {
		s.remember(ctx, key, existing)
		return existing, nil
	}

	session, err := s.merchant.CreateCheckout(ctx, domain.CheckoutRequest{
		Amount:      toMinorUnits(in.Amount),
		Currency:    in.Currency,
		Customer:    domain.Customer{Email: in.Customer.Email, Name: in.Customer.Name},
		Reference:   in.Reference,
		SuccessURL:  in.SuccessURL,
		CancelURL:   in.CancelURL,
		Description: in.Description,
	})
	if err != nil {
		s.log.Error().Err(err).Str("reference", in.Reference).Msg("checkout creation failed")
		return nil, bookingError(err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error().Err(err).Str("reference", in.Reference).Str("session_id", session.ID).Msg("checkout session not persisted")
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist checkout session: %w", err))
	}

	s.remember(ctx, key, session)
	s.log.Info().Str("reference", in.Reference).Str("session_id", session.ID).Bool("simulated", session.Simulated).Msg("checkout session created")
	return session, nil
}

func (s *CheckoutServiceImpl) remember(ctx context.Context, key string, session *domain.CheckoutSession) {
	raw, err := json.Marshal(cachedSession{CheckoutSession: *session, SuccessURL: session.SuccessURL, Simulated: session.Simulated})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache checkout session in redis")
	}
}

// DemoRedirect returns the success URL of a session created in simulation
// mode. Real sessions are not reachable through the demo route.
func (s *CheckoutServiceImpl) DemoRedirect(ctx context.Context, publicID string) (string, error) {
	session, err := s.sessions.GetByPublicID(ctx, publicID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("lookup checkout session: %w", err))
	}
	if session == nil || !session.Simulated {
		return "", apperror.ErrNotFound("Checkout session")
	}
	return session.SuccessURL, nil
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
