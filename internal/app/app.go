package app

import (
	"context"
	"fmt"

	"marketplace-integrations/config"
	httpHandler "marketplace-integrations/internal/adapter/http/handler"
	"marketplace-integrations/internal/adapter/http/middleware"
	"marketplace-integrations/internal/adapter/storage/objectstore"
	pgStorage "marketplace-integrations/internal/adapter/storage/postgres"
	redisStorage "marketplace-integrations/internal/adapter/storage/redis"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// App is the wired HTTP service.
type App struct {
	Router  *gin.Engine
	closers []func()
}

// Close releases the database pool and Redis client.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Stores groups the persistence the services depend on.
type Stores struct {
	Orders         ports.OrderRepository
	Sessions       ports.CheckoutSessionRepository
	WebhookLogs    ports.WebhookLogRepository
	Shipments      ports.ShipmentRepository
	Payouts        ports.PayoutRepository
	Audit          ports.AuditRepository
	Idempotency    ports.IdempotencyCache
	DeadLetters    ports.DeadLetterQueue
	RateLimits     middleware.Limiter
	HealthCheckers []ports.HealthChecker
}

// New connects to PostgreSQL and Redis, applies the schema and wires every
// service behind the router.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool); err != nil {
		a.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	log.Info().Msg("Redis connected")

	stores := Stores{
		Orders:         pgStorage.NewOrderRepo(pool),
		Sessions:       pgStorage.NewCheckoutSessionRepo(pool),
		WebhookLogs:    pgStorage.NewWebhookLogRepo(pool),
		Shipments:      pgStorage.NewShipmentRepo(pool),
		Payouts:        pgStorage.NewPayoutRepo(pool),
		Audit:          pgStorage.NewAuditRepo(pool),
		Idempotency:    redisStorage.NewIdempotencyCache(rdb),
		DeadLetters:    redisStorage.NewDeadLetterQueue(rdb),
		RateLimits:     redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
	}

	docs, memDocs, err := NewDocumentStore(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	router, err := NewRouter(cfg, stores, NewProviders(cfg, docs, log), memDocs, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Router = router
	return a, nil
}

// NewRouter builds the services over stores and providers and mounts them.
// memDocs is served under /documents when non-nil.
func NewRouter(cfg *config.Config, stores Stores, providers *Providers, memDocs *objectstore.MemoryStore, log zerolog.Logger) (*gin.Engine, error) {
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		return nil, fmt.Errorf("initializing encryption service: %w", err)
	}

	deps := httpHandler.RouterDeps{
		ShippingSvc:    service.NewShippingService(providers.Quoters(), log),
		FulfillmentSvc: service.NewFulfillmentService(providers.DHL, providers.TTOM, stores.Shipments, log),
		CheckoutSvc:    service.NewCheckoutService(providers.Merchant, stores.Sessions, stores.Idempotency, log),
		Reconciler: service.NewWebhookReconciler(
			providers.Merchant, stores.Orders, stores.Sessions, stores.WebhookLogs, stores.DeadLetters, stores.Idempotency, log,
		),
		Prober:         service.NewHealthProber(providers.Probes(), cfg.Providers.Timeout, log),
		PayoutSvc:      service.NewPayoutService(providers.Business, stores.Payouts, encSvc, log),
		DeadLetters:    stores.DeadLetters,
		TokenSvc:       service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		RateLimitStore: stores.RateLimits,
		HealthCheckers: stores.HealthCheckers,
		AuditSvc:       service.NewAuditService(stores.Audit, log),
		Logger:         log,
	}
	if memDocs != nil {
		deps.Documents = memDocs
	}

	for _, p := range providers.Probes() {
		log.Info().Str("provider", string(p.Name())).Bool("configured", p.IsConfigured()).Msg("provider adapter ready")
	}

	return httpHandler.SetupRouter(deps), nil
}
