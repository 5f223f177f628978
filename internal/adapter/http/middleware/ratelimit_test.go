package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-integrations/internal/adapter/http/middleware"
	redisStore "marketplace-integrations/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test", middleware.RateLimiter(store, "quotes", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func doGet(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		w := doGet(router, "10.0.0.1:1234")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "10.0.0.1:1234").Code)
	}

	w := doGet(router, "10.0.0.1:1234")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")

	assert.Equal(t, 200, doGet(router, "10.0.0.2:1234").Code, "other clients keep their own window")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("redis down")
}

func TestRateLimiter_DegradesOpen(t *testing.T) {
	router := setupRateLimitRouter(failingLimiter{})

	for i := 0; i < 5; i++ {
		assert.Equal(t, 200, doGet(router, "10.0.0.1:1234").Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()

	assert.Equal(t, int64(60), rules["quotes"].Limit)
	assert.Equal(t, int64(30), rules["checkout"].Limit)
	assert.Equal(t, int64(20), rules["bookings"].Limit)
	assert.Equal(t, int64(60), rules["tracking"].Limit)
	_, hasWebhooks := rules["webhooks"]
	assert.False(t, hasWebhooks)
	for _, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window)
	}
}
