package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	clock := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return clock }

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "quotes:10.0.0.1", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "quotes:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "checkout:10.0.0.1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("next window starts fresh", func(t *testing.T) {
		key := "bookings:10.0.0.2"
		_, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)

		result, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		clock = clock.Add(time.Minute)
		mr.FastForward(61 * time.Second)

		result, err = store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("reset is the end of the window", func(t *testing.T) {
		result, err := store.Allow(ctx, "tracking:10.0.0.3", 10, time.Minute)
		require.NoError(t, err)
		windowStart := clock.Unix() / 60 * 60
		assert.Equal(t, windowStart+60, result.ResetAt)
	})
}
