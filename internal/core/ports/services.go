package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"marketplace-integrations/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload []byte) string
	Verify(secretKey string, payload []byte, signature string) bool
}

// TokenService issues and validates admin JWTs.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed admin JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// AuditService records audited writes without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// QuoteRequest asks every carrier for rates on one shipment.
type QuoteRequest struct {
	From     domain.Address   `json:"from"`
	To       domain.Address   `json:"to"`
	Packages []domain.Package `json:"packages" validate:"min=1,dive"`
}

// ShippingService performs rate shopping across carriers.
type ShippingService interface {
	QuoteRates(ctx context.Context, req QuoteRequest) (*domain.RateShoppingResult, error)
}

// FulfillmentService books and tracks shipments.
type FulfillmentService interface {
	BookAir(ctx context.Context, req domain.AirShipmentRequest) (*domain.AirShipment, error)
	BookSea(ctx context.Context, req domain.SeaBookingRequest) (*domain.SeaBooking, error)
	// Track uses the given provider, or the persisted shipment's provider
	// when provider is empty.
	Track(ctx context.Context, trackingNumber string, provider domain.Provider) (*domain.TrackingResult, error)
}

// CheckoutInput is the storefront's checkout request before validation.
type CheckoutInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency    string          `json:"currency" validate:"omitempty,len=3,alpha"`
	Customer    CustomerInput   `json:"customer"`
	Reference   string          `json:"reference" validate:"required,max=100"`
	SuccessURL  string          `json:"success_url" validate:"required,abs_url"`
	CancelURL   string          `json:"cancel_url" validate:"required,abs_url"`
	Description string          `json:"description" validate:"max=255"`
}

// CustomerInput identifies the payer.
type CustomerInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=100"`
}

// CheckoutService opens hosted checkouts.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (*domain.CheckoutSession, error)
	// DemoRedirect returns where the simulated checkout page sends the buyer.
	DemoRedirect(ctx context.Context, publicID string) (string, error)
}

// WebhookReconciler applies signed merchant processor webhooks.
type WebhookReconciler interface {
	Handle(ctx context.Context, signature string, payload []byte) error
	ListLogs(ctx context.Context, processed *bool, limit int) ([]domain.WebhookLogEntry, error)
}

// HealthProber reports the operational status of every provider.
type HealthProber interface {
	Probe(ctx context.Context) map[domain.Provider]domain.ProviderHealth
}

// PayoutInput is an admin payout request before validation.
type PayoutInput struct {
	BeneficiaryEmail string          `json:"beneficiary_email" validate:"required,email"`
	BeneficiaryName  string          `json:"beneficiary_name" validate:"required,max=140"`
	IBAN             string          `json:"iban" validate:"omitempty,iban"`
	BIC              string          `json:"bic" validate:"omitempty,bic"`
	Amount           decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency         string          `json:"currency" validate:"omitempty,len=3,alpha"`
	Reference        string          `json:"reference" validate:"required,max=100"`
}

// PayoutService sends and lists business payouts.
type PayoutService interface {
	CreatePayout(ctx context.Context, in PayoutInput) (*domain.Payout, error)
	ListPayouts(ctx context.Context, limit int) ([]domain.Payout, error)
}
