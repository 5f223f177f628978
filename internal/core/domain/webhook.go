package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Merchant processor webhook event types.
const (
	EventOrderCompleted      = "ORDER_COMPLETED"
	EventOrderPaymentFailed  = "ORDER_PAYMENT_FAILED"
	EventOrderPaymentDecline = "ORDER_PAYMENT_DECLINED"
)

// WebhookEvent is the parsed body of a merchant processor webhook.
type WebhookEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WebhookEventData holds the fields of Data this service reads.
type WebhookEventData struct {
	OrderID             string `json:"order_id"`
	MerchantOrderExtRef string `json:"merchant_order_ext_ref"`
}

// WebhookLogEntry is the append-only audit row written for every accepted
// webhook before any side effect.
type WebhookLogEntry struct {
	ID          uuid.UUID  `json:"id"`
	Provider    Provider   `json:"provider"`
	EventType   string     `json:"event_type"`
	Payload     string     `json:"payload"`
	Signature   string     `json:"signature"`
	Processed   bool       `json:"processed"`
	Error       *string    `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// DeadLetter is a webhook that was accepted but could not be applied.
type DeadLetter struct {
	LogID     uuid.UUID `json:"log_id"`
	EventType string    `json:"event_type"`
	Reference string    `json:"reference"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}
