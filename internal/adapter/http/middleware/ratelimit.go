package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "marketplace-integrations/internal/adapter/storage/redis"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Limiter counts requests in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-client limits for each endpoint
// group. Webhooks are deliberately absent.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"quotes":   {Limit: 60, Window: time.Minute},
		"checkout": {Limit: 30, Window: time.Minute},
		"bookings": {Limit: 20, Window: time.Minute},
		"tracking": {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A failing store lets the request through.
func RateLimiter(store Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", group, extractIdentifier(c))

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys admins by subject and everyone else by client IP.
func extractIdentifier(c *gin.Context) string {
	if sub := c.GetString(CtxAdminSubject); sub != "" {
		return "admin:" + sub
	}
	return c.ClientIP()
}
