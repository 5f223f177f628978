package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-integrations/internal/adapter/http/handler"
	"marketplace-integrations/internal/adapter/storage/objectstore"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/core/ports/mocks"
	"marketplace-integrations/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	router      *gin.Engine
	shipping    *mocks.MockShippingService
	fulfillment *mocks.MockFulfillmentService
	checkout    *mocks.MockCheckoutService
	reconciler  *mocks.MockWebhookReconciler
	prober      *mocks.MockHealthProber
	payouts     *mocks.MockPayoutService
	dlq         *mocks.MockDeadLetterQueue
	tokens      *mocks.MockTokenService
	audit       *mocks.MockAuditService
	documents   *objectstore.MemoryStore
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func newTestEnv(t *testing.T, checkers ...ports.HealthChecker) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		shipping:    mocks.NewMockShippingService(ctrl),
		fulfillment: mocks.NewMockFulfillmentService(ctrl),
		checkout:    mocks.NewMockCheckoutService(ctrl),
		reconciler:  mocks.NewMockWebhookReconciler(ctrl),
		prober:      mocks.NewMockHealthProber(ctrl),
		payouts:     mocks.NewMockPayoutService(ctrl),
		dlq:         mocks.NewMockDeadLetterQueue(ctrl),
		tokens:      mocks.NewMockTokenService(ctrl),
		audit:       mocks.NewMockAuditService(ctrl),
		documents:   objectstore.NewMemoryStore("http://localhost:8080"),
	}
	env.router = handler.SetupRouter(handler.RouterDeps{
		ShippingSvc:    env.shipping,
		FulfillmentSvc: env.fulfillment,
		CheckoutSvc:    env.checkout,
		Reconciler:     env.reconciler,
		Prober:         env.prober,
		PayoutSvc:      env.payouts,
		DeadLetters:    env.dlq,
		TokenSvc:       env.tokens,
		HealthCheckers: checkers,
		AuditSvc:       env.audit,
		Documents:      env.documents,
		Logger:         zerolog.Nop(),
	})
	return env
}

func (e *testEnv) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) asAdmin() map[string]string {
	e.tokens.EXPECT().Validate("admin-token").Return(&ports.TokenClaims{Subject: "ops@example.com", Role: "admin"}, nil).AnyTimes()
	return map[string]string{"Authorization": "Bearer admin-token"}
}

type envelope struct {
	Data      json.RawMessage   `json:"data"`
	RequestID string            `json:"request_id"`
	ErrorCode string            `json:"error_code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateCheckout_Created(t *testing.T) {
	env := newTestEnv(t)
	env.checkout.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in ports.CheckoutInput) (*domain.CheckoutSession, error) {
			assert.Equal(t, "ORD-1", in.Reference)
			assert.Equal(t, "49.99", in.Amount.String())
			return &domain.CheckoutSession{
				ID:          "rev-1",
				PublicID:    "pub-1",
				CheckoutURL: "https://checkout.example.com/pub-1",
				Status:      domain.CheckoutStatusPending,
			}, nil
		})

	var audited *domain.AuditLog
	env.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		audited = entry
	})

	body := []byte(`{"amount":"49.99","currency":"EUR","reference":"ORD-1",
		"customer":{"email":"buyer@example.com"},
		"success_url":"https://shop.example.com/ok","cancel_url":"https://shop.example.com/cancel"}`)
	w := env.do(http.MethodPost, "/api/v1/checkout", body, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.NotEmpty(t, resp.RequestID)

	var data map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "https://checkout.example.com/pub-1", data["checkout_url"])
	assert.Equal(t, "pending", data["status"])

	require.NotNil(t, audited)
	assert.Equal(t, domain.AuditActionCheckout, audited.Action)
	assert.Equal(t, "pub-1", audited.ResourceID)
}

func TestCreateCheckout_MalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/checkout", []byte(`{"amount":`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decode(t, w).ErrorCode)
}

func TestCreateCheckout_ProviderFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t)
	env.checkout.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRetryable(errors.New("HTTP 500 from processor")))

	w := env.do(http.MethodPost, "/api/v1/checkout", []byte(`{"reference":"ORD-1"}`), nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "PRV_002", resp.ErrorCode)
	assert.NotContains(t, resp.Message, "HTTP 500")
}

func TestDemoRedirect(t *testing.T) {
	env := newTestEnv(t)
	env.checkout.EXPECT().DemoRedirect(gomock.Any(), "pub-1").Return("https://shop.example.com/ok", nil)
	env.checkout.EXPECT().DemoRedirect(gomock.Any(), "nope").Return("", apperror.ErrNotFound("Checkout session"))

	w := env.do(http.MethodGet, "/demo/checkout/pub-1", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://shop.example.com/ok", w.Header().Get("Location"))

	w = env.do(http.MethodGet, "/demo/checkout/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhook_PassesRawBodyAndSignature(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{"event":"ORDER_COMPLETED","data":{"order_id":"o-1","merchant_order_ext_ref":"ORD-1"}}`)
	env.reconciler.EXPECT().Handle(gomock.Any(), "v1=abc", payload).Return(nil)

	w := env.do(http.MethodPost, "/api/v1/webhooks/revolut", payload, map[string]string{"Revolut-Signature": "v1=abc"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestWebhook_FallsBackToXSignature(t *testing.T) {
	env := newTestEnv(t)
	env.reconciler.EXPECT().Handle(gomock.Any(), "fallback", gomock.Any()).Return(nil)

	w := env.do(http.MethodPost, "/api/v1/webhooks/revolut", []byte(`{}`), map[string]string{"X-Signature": "fallback"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	env := newTestEnv(t)
	env.reconciler.EXPECT().Handle(gomock.Any(), "", gomock.Any()).Return(apperror.ErrInvalidSignature())

	w := env.do(http.MethodPost, "/api/v1/webhooks/revolut", []byte(`{}`), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", decode(t, w).ErrorCode)
}

func TestQuotes_OK(t *testing.T) {
	env := newTestEnv(t)
	quote := domain.RateQuote{Provider: domain.ProviderDHL, Mode: domain.ModeAir, TotalPrice: 4550, Currency: "EUR"}
	env.shipping.EXPECT().QuoteRates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.QuoteRequest) (*domain.RateShoppingResult, error) {
			assert.Equal(t, "DE", req.From.CountryCode)
			require.Len(t, req.Packages, 1)
			return &domain.RateShoppingResult{
				Options:  domain.ShippingOptions{Cheapest: &quote, Fastest: &quote, Best: &quote},
				AllRates: []domain.RateQuote{quote},
				Failures: []domain.ProviderFailure{},
			}, nil
		})

	body := []byte(`{"from":{"countryCode":"DE","postalCode":"10115"},"to":{"countryCode":"GB","postalCode":"SW1A"},
		"packages":[{"weight":2,"length":30,"width":20,"height":10}]}`)
	w := env.do(http.MethodPost, "/api/v1/shipping/quotes", body, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.RateShoppingResult
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Len(t, result.AllRates, 1)
	assert.Equal(t, int64(4550), result.Options.Cheapest.TotalPrice)
}

func TestBookAir_CreatedAndAudited(t *testing.T) {
	env := newTestEnv(t)
	env.fulfillment.EXPECT().BookAir(gomock.Any(), gomock.Any()).
		Return(&domain.AirShipment{TrackingNumber: "1234567890", LabelURL: "http://localhost:8080/documents/labels/1234567890.pdf"}, nil)
	env.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionBookAir, entry.Action)
		assert.Equal(t, "1234567890", entry.ResourceID)
	})

	w := env.do(http.MethodPost, "/api/v1/shipping/air/bookings", []byte(`{"reference":"ORD-1"}`), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookSea_ValidationErrorNotAudited(t *testing.T) {
	env := newTestEnv(t)
	env.fulfillment.EXPECT().BookSea(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ValidationFields(map[string]string{"orders": "must contain at least 1 item"}))

	w := env.do(http.MethodPost, "/api/v1/shipping/sea/bookings", []byte(`{"orders":[]}`), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "must contain at least 1 item", decode(t, w).Fields["orders"])
}

func TestTrack_PassesProviderQuery(t *testing.T) {
	env := newTestEnv(t)
	env.fulfillment.EXPECT().Track(gomock.Any(), "TTOM-123", domain.ProviderTTOM).
		Return(&domain.TrackingResult{Provider: domain.ProviderTTOM, Tracking: &domain.TrackingInfo{Status: domain.ShipmentStatusInTransit}}, nil)

	w := env.do(http.MethodGet, "/api/v1/shipping/tracking/TTOM-123?provider=ttom", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.TrackingResult
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Equal(t, domain.ShipmentStatusInTransit, result.Tracking.Status)
}

func TestProviderHealth_AlwaysOK(t *testing.T) {
	env := newTestEnv(t)
	env.prober.EXPECT().Probe(gomock.Any()).Return(map[domain.Provider]domain.ProviderHealth{
		domain.ProviderDHL:             {Configured: true, Status: domain.HealthError, Error: "HTTP 503"},
		domain.ProviderTTOM:            {Configured: false, Status: domain.HealthNotConfigured},
		domain.ProviderRevolutMerchant: {Configured: true, Status: domain.HealthOK},
		domain.ProviderRevolutBusiness: {Configured: true, Status: domain.HealthUnknown},
	})

	w := env.do(http.MethodGet, "/api/v1/health/providers", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var snapshot map[string]domain.ProviderHealth
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &snapshot))
	assert.Len(t, snapshot, 4)
	assert.Equal(t, domain.HealthError, snapshot["dhl"].Status)
	assert.Equal(t, "HTTP 503", snapshot["dhl"].Error)
}

func TestInfraHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		env := newTestEnv(t, stubChecker{name: "postgresql"}, stubChecker{name: "redis"})
		w := env.do(http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("degraded", func(t *testing.T) {
		env := newTestEnv(t, stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("connection refused")})
		w := env.do(http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestAdmin_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/admin/payouts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env.tokens.EXPECT().Validate("storefront-token").Return(&ports.TokenClaims{Subject: "u-1", Role: "customer"}, nil)
	w = env.do(http.MethodGet, "/api/v1/admin/payouts", nil, map[string]string{"Authorization": "Bearer storefront-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_CreatePayoutAuditsActor(t *testing.T) {
	env := newTestEnv(t)
	headers := env.asAdmin()
	env.payouts.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(&domain.Payout{
		ID: "tx-1", State: "pending", Amount: 10000, Currency: "EUR", Reference: "PAY-1", CreatedAt: time.Now(),
	}, nil)
	env.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionPayout, entry.Action)
		assert.Equal(t, "ops@example.com", entry.Actor)
		assert.Equal(t, "tx-1", entry.ResourceID)
	})

	w := env.do(http.MethodPost, "/api/v1/admin/payouts", []byte(`{"amount":"100.00","reference":"PAY-1"}`), headers)

	require.Equal(t, http.StatusCreated, w.Code)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "tx-1", data["id"])
	assert.NotContains(t, w.Body.String(), "iban")
}

func TestAdmin_ListPayoutsRejectsBadLimit(t *testing.T) {
	env := newTestEnv(t)
	headers := env.asAdmin()

	w := env.do(http.MethodGet, "/api/v1/admin/payouts?limit=abc", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdmin_ListWebhooksFilters(t *testing.T) {
	env := newTestEnv(t)
	headers := env.asAdmin()
	env.reconciler.EXPECT().ListLogs(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, processed *bool, _ int) ([]domain.WebhookLogEntry, error) {
			require.NotNil(t, processed)
			assert.False(t, *processed)
			return []domain.WebhookLogEntry{{ID: uuid.New(), EventType: "ORDER_COMPLETED"}}, nil
		})

	w := env.do(http.MethodGet, "/api/v1/admin/webhooks?processed=false&limit=10", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Equal(t, 1, list.Count)
}

func TestAdmin_ListDeadLettersDefaultsLimit(t *testing.T) {
	env := newTestEnv(t)
	headers := env.asAdmin()
	env.dlq.EXPECT().List(gomock.Any(), 50).Return([]domain.DeadLetter{{Reference: "ORD-404", Reason: "no order"}}, nil)

	w := env.do(http.MethodGet, "/api/v1/admin/webhooks/dead-letters", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ORD-404")
}

func TestDocument_ServesStoredBody(t *testing.T) {
	env := newTestEnv(t)
	url, err := env.documents.Put(context.Background(), "labels/123.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/documents/labels/123.pdf", url)

	w := env.do(http.MethodGet, "/documents/labels/123.pdf", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4", w.Body.String())

	w = env.do(http.MethodGet, "/documents/labels/missing.pdf", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, stubChecker{name: "postgresql"})
	env.do(http.MethodGet, "/health", nil, nil)

	w := env.do(http.MethodGet, "/metrics", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mkt_http_requests_total{method="GET",route="/health",status="200"}`)
}
