package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	key := "checkout:ORD-001"
	value := []byte(`{"id":"ord-1","public_id":"pub-1","status":"pending"}`)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, key, value, 24*time.Hour))

	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
	assert.True(t, s.Exists("idempotency:checkout:ORD-001"))
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "checkout:ORD-002", []byte(`{}`), time.Second))
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "checkout:ORD-002")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestIdempotencyCache_ServerDown(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	s.Close()

	_, err := cache.Get(context.Background(), "checkout:ORD-003")
	assert.ErrorContains(t, err, "redis idempotency get")
}

func TestIdempotencyCache_Delete(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "checkout:ORD-004", []byte(`{}`), time.Hour))
	require.NoError(t, cache.Delete(ctx, "checkout:ORD-004"))
	assert.False(t, s.Exists("idempotency:checkout:ORD-004"))

	assert.NoError(t, cache.Delete(ctx, "checkout:never-set"))
}
