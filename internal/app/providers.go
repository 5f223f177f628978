package app

import (
	"context"
	"fmt"

	"marketplace-integrations/config"
	"marketplace-integrations/internal/adapter/provider/dhl"
	revolutBusiness "marketplace-integrations/internal/adapter/provider/revolut/business"
	revolutMerchant "marketplace-integrations/internal/adapter/provider/revolut/merchant"
	"marketplace-integrations/internal/adapter/provider/ttom"
	"marketplace-integrations/internal/adapter/storage/objectstore"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/service"
	"marketplace-integrations/pkg/logger"

	"github.com/rs/zerolog"
)

// Providers holds one adapter per external integration. Each adapter picks
// its live or simulated transport from its own credentials.
type Providers struct {
	DHL      *dhl.Adapter
	TTOM     *ttom.Adapter
	Merchant *revolutMerchant.Adapter
	Business *revolutBusiness.Adapter
}

// NewProviders builds every adapter from cfg.
func NewProviders(cfg *config.Config, docs ports.DocumentStore, log zerolog.Logger) *Providers {
	timeout := cfg.Providers.Timeout
	return &Providers{
		DHL:  dhl.New(cfg.Providers.DHL, timeout, docs, logger.Component(log, "provider.dhl")),
		TTOM: ttom.New(cfg.Providers.TTOM, timeout, docs, logger.Component(log, "provider.ttom")),
		Merchant: revolutMerchant.New(cfg.Providers.RevolutMerchant, cfg.App.PublicURL, timeout,
			service.NewHMACSignatureService(), logger.Component(log, "provider.revolut_merchant")),
		Business: revolutBusiness.New(cfg.Providers.RevolutBusiness, timeout, logger.Component(log, "provider.revolut_business")),
	}
}

// Quoters returns the rate shopping participants, air first.
func (p *Providers) Quoters() []ports.RateQuoter {
	return []ports.RateQuoter{p.DHL, p.TTOM}
}

// Probes returns every adapter for health reporting.
func (p *Providers) Probes() []ports.ProviderProbe {
	return []ports.ProviderProbe{p.DHL, p.TTOM, p.Merchant, p.Business}
}

// NewDocumentStore returns the S3 bucket when storage is configured and an
// in-process store otherwise. The second result is non-nil only for the
// in-process store, which the HTTP layer must serve itself.
func NewDocumentStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.DocumentStore, *objectstore.MemoryStore, error) {
	if !cfg.Storage.Enabled() {
		mem := objectstore.NewMemoryStore(cfg.App.PublicURL)
		return mem, mem, nil
	}
	s3Store, err := objectstore.NewS3Store(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("creating document store: %w", err)
	}
	return s3Store, nil, nil
}
