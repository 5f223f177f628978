package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCheckout AuditAction = "CHECKOUT_CREATE"
	AuditActionBookAir  AuditAction = "SHIPMENT_BOOK_AIR"
	AuditActionBookSea  AuditAction = "SHIPMENT_BOOK_SEA"
	AuditActionPayout   AuditAction = "PAYOUT_CREATE"
)

// AuditLog records a single audited write.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"` // admin subject, empty for storefront calls
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
