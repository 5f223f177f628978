package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis.
type IdempotencyCache struct {
	client goredis.UniversalClient
	prefix string
}

func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
	}
}

// Get returns the cached value for key, or nil, nil if absent.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

// Delete drops key. A missing key is not an error.
func (c *IdempotencyCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis idempotency delete: %w", err)
	}
	return nil
}
