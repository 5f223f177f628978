package handler

import (
	"marketplace-integrations/internal/adapter/http/middleware"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ShippingSvc    ports.ShippingService
	FulfillmentSvc ports.FulfillmentService
	CheckoutSvc    ports.CheckoutService
	Reconciler     ports.WebhookReconciler
	Prober         ports.HealthProber
	PayoutSvc      ports.PayoutService
	DeadLetters    ports.DeadLetterQueue
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Documents      DocumentSource     // nil = documents live in an external bucket
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	r.GET("/demo/checkout/:public_id", checkoutHandler.DemoRedirect)
	if deps.Documents != nil {
		r.GET("/documents/*key", Document(deps.Documents))
	}

	v1 := r.Group("/api/v1")

	// --- Storefront routes ---
	v1.GET("/health/providers", ProviderHealth(deps.Prober))
	v1.POST("/checkout", rl("checkout"), checkoutHandler.CreateCheckout)

	shippingHandler := NewShippingHandler(deps.ShippingSvc, deps.FulfillmentSvc)
	shipping := v1.Group("/shipping")
	{
		shipping.POST("/quotes", rl("quotes"), shippingHandler.Quotes)
		shipping.POST("/air/bookings", rl("bookings"), shippingHandler.BookAir)
		shipping.POST("/sea/bookings", rl("bookings"), shippingHandler.BookSea)
		shipping.GET("/tracking/:tracking_number", rl("tracking"), shippingHandler.Track)
	}

	// --- Signed webhooks (signature checked by the reconciler, never rate limited) ---
	webhookHandler := NewWebhookHandler(deps.Reconciler)
	v1.POST("/webhooks/revolut", webhookHandler.Revolut)

	// --- Admin routes (JWT with admin role) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, service.AdminRole, deps.Logger)
	adminHandler := NewAdminHandler(deps.PayoutSvc, deps.Reconciler, deps.DeadLetters)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/payouts", adminHandler.CreatePayout)
		admin.GET("/payouts", adminHandler.ListPayouts)
		admin.GET("/webhooks", adminHandler.ListWebhooks)
		admin.GET("/webhooks/dead-letters", adminHandler.ListDeadLetters)
	}

	return r
}
