package middleware

import (
	"net/http"
	"strings"
	"time"

	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxRequestID    = "request_id"
	CtxAdminSubject = "admin_subject"
	// CtxResourceID is set by handlers so the audit trail can name what a
	// write created.
	CtxResourceID = "resource_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// JWTAuth admits bearer tokens that validate and carry the admin role.
func JWTAuth(tokenSvc ports.TokenService, adminRole string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("admin token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if claims.Role != adminRole {
			log.Warn().Str("subject", claims.Subject).Str("role", claims.Role).Msg("token without admin role")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAdminSubject, claims.Subject)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past the limit fail and the
// handler reports the request as invalid.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
