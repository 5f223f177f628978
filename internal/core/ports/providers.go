package ports

//go:generate mockgen -source=providers.go -destination=mocks/mock_providers.go -package=mocks

import (
	"context"

	"marketplace-integrations/internal/core/domain"
)

// ProviderProbe is the capability every adapter shares: a credential check
// and one minimal real call for health reporting.
type ProviderProbe interface {
	Name() domain.Provider
	IsConfigured() bool
	Probe(ctx context.Context) error
}

// RateQuoter returns shipping quotes. Unconfigured quoters return exactly
// one simulated quote.
type RateQuoter interface {
	Name() domain.Provider
	Mode() domain.ShippingMode
	IsConfigured() bool
	QuoteRates(ctx context.Context, origin, destination domain.Address, packages []domain.Package) ([]domain.RateQuote, error)
}

// Tracker fetches tracking state for a shipment or booking reference.
type Tracker interface {
	Name() domain.Provider
	Track(ctx context.Context, trackingNumber string) (*domain.TrackingInfo, error)
}

// AirCarrier is the express air carrier.
type AirCarrier interface {
	RateQuoter
	Tracker
	CreateShipment(ctx context.Context, req domain.AirShipmentRequest) (*domain.AirShipment, error)
}

// SeaForwarder is the LCL sea freight forwarder.
type SeaForwarder interface {
	RateQuoter
	Tracker
	Book(ctx context.Context, req domain.SeaBookingRequest) (*domain.SeaBooking, error)
}

// MerchantPayments is the hosted checkout processor.
type MerchantPayments interface {
	IsConfigured() bool
	CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
	// VerifyWebhook checks an HMAC-SHA256 signature over the raw payload.
	VerifyWebhook(signature string, payload []byte) bool
}

// BusinessPayouts sends money to beneficiaries.
type BusinessPayouts interface {
	IsConfigured() bool
	CreatePayout(ctx context.Context, req domain.PayoutRequest) (*domain.Payout, error)
	// ListPayouts returns at most limit payouts, most recent first.
	ListPayouts(ctx context.Context, limit int) ([]domain.Payout, error)
}
