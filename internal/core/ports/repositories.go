package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"marketplace-integrations/internal/core/domain"

	"github.com/google/uuid"
)

// OrderRepository reaches storefront orders. Lookups return nil, nil when
// nothing matches.
type OrderRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	// UpdateStatus moves the order from one status to another and reports
	// whether a row changed. A false result means the order was no longer in
	// the from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error)
}

// CheckoutSessionRepository persists hosted checkout sessions.
type CheckoutSessionRepository interface {
	Create(ctx context.Context, session *domain.CheckoutSession) error
	GetByReference(ctx context.Context, reference string) (*domain.CheckoutSession, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.CheckoutSession, error)
	UpdateStatusByReference(ctx context.Context, reference string, status domain.CheckoutStatus) error
}

// WebhookLogRepository is the append-only webhook audit trail.
type WebhookLogRepository interface {
	Create(ctx context.Context, entry *domain.WebhookLogEntry) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	RecordError(ctx context.Context, id uuid.UUID, message string) error
	// List returns the newest entries first, optionally filtered on processed.
	List(ctx context.Context, processed *bool, limit int) ([]domain.WebhookLogEntry, error)
}

// ShipmentRepository persists confirmed bookings.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *domain.Shipment) error
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error
}

// PayoutRepository keeps created payouts for audit.
type PayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
