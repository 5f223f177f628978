package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types for the Revolut Business API (v1.0). Amounts are major units.

type receiver struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	IBAN  string `json:"iban,omitempty"`
	BIC   string `json:"bic,omitempty"`
}

type payRequest struct {
	RequestID string          `json:"request_id"`
	Receiver  receiver        `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference"`
}

type payResponse struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

type transaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	State     string    `json:"state"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
	Legs      []leg     `json:"legs"`
}

type leg struct {
	Amount       decimal.Decimal `json:"amount"` // negative for outgoing transfers
	Currency     string          `json:"currency"`
	Description  string          `json:"description"`
	Counterparty *counterparty   `json:"counterparty,omitempty"`
}

type counterparty struct {
	Name string `json:"name"`
}
