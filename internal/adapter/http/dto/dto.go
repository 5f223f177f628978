package dto

import (
	"time"

	"marketplace-integrations/internal/core/domain"
)

// CheckoutResponse is the storefront's view of a new checkout session.
type CheckoutResponse struct {
	ID          string `json:"id"`
	PublicID    string `json:"public_id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

// NewCheckoutResponse maps a session to its response body.
func NewCheckoutResponse(s *domain.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		ID:          s.ID,
		PublicID:    s.PublicID,
		CheckoutURL: s.CheckoutURL,
		Status:      string(s.Status),
	}
}

// WebhookAck is the bare acknowledgement webhook senders expect.
type WebhookAck struct {
	Received bool `json:"received"`
}

// ProviderHealthResponse is keyed by provider name.
type ProviderHealthResponse map[domain.Provider]domain.ProviderHealth

// InfraHealthResponse reports infrastructure dependencies.
type InfraHealthResponse struct {
	Status       string                     `json:"status"`
	Dependencies map[string]DependencyState `json:"dependencies"`
}

type DependencyState struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// PayoutListResponse wraps recent payouts.
type PayoutListResponse struct {
	Items []domain.Payout `json:"items"`
	Count int             `json:"count"`
}

// WebhookLogListResponse wraps webhook log rows.
type WebhookLogListResponse struct {
	Items []domain.WebhookLogEntry `json:"items"`
	Count int                      `json:"count"`
}

// DeadLetterListResponse wraps webhooks awaiting manual reconciliation.
type DeadLetterListResponse struct {
	Items []domain.DeadLetter `json:"items"`
	Count int                 `json:"count"`
}

// PayoutResponse is an admin's view of a created payout.
type PayoutResponse struct {
	ID        string `json:"id"`
	State     string `json:"state"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
	CreatedAt string `json:"created_at"`
}

func NewPayoutResponse(p *domain.Payout) PayoutResponse {
	return PayoutResponse{
		ID:        p.ID,
		State:     p.State,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
