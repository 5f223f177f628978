package ports

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"
	"time"

	"marketplace-integrations/internal/core/domain"
)

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DeadLetterQueue holds accepted webhooks that could not be applied.
type DeadLetterQueue interface {
	Push(ctx context.Context, letter *domain.DeadLetter) error
	List(ctx context.Context, limit int) ([]domain.DeadLetter, error)
}

// DocumentStore keeps generated shipping documents and returns a URL the
// storefront and carrier can fetch them from.
type DocumentStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}
