package service

import (
	"context"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// HealthProberImpl implements ports.HealthProber.
type HealthProberImpl struct {
	probes  []ports.ProviderProbe
	timeout time.Duration
	log     zerolog.Logger
}

// NewHealthProber builds a prober over probes. A positive timeout bounds
// the whole probe round.
func NewHealthProber(probes []ports.ProviderProbe, timeout time.Duration, log zerolog.Logger) *HealthProberImpl {
	return &HealthProberImpl{
		probes:  probes,
		timeout: timeout,
		log:     log.With().Str("component", "health_prober").Logger(),
	}
}

// Probe checks every provider concurrently. One provider's failure never
// affects another's entry.
func (p *HealthProberImpl) Probe(ctx context.Context) map[domain.Provider]domain.ProviderHealth {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	results := make([]domain.ProviderHealth, len(p.probes))
	var g errgroup.Group
	for i, probe := range p.probes {
		g.Go(func() error {
			results[i] = p.probeOne(ctx, probe)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[domain.Provider]domain.ProviderHealth, len(p.probes))
	for i, probe := range p.probes {
		out[probe.Name()] = results[i]
	}
	return out
}

func (p *HealthProberImpl) probeOne(ctx context.Context, probe ports.ProviderProbe) domain.ProviderHealth {
	if !probe.IsConfigured() {
		return domain.ProviderHealth{Configured: false, Status: domain.HealthNotConfigured}
	}
	if ctx.Err() != nil {
		return domain.ProviderHealth{Configured: true, Status: domain.HealthUnknown}
	}

	err := probe.Probe(ctx)
	switch {
	case err == nil:
		return domain.ProviderHealth{Configured: true, Status: domain.HealthOK}
	case ctx.Err() != nil:
		p.log.Warn().Err(err).Str("provider", string(probe.Name())).Msg("health probe did not finish")
		return domain.ProviderHealth{Configured: true, Status: domain.HealthUnknown}
	default:
		p.log.Warn().Err(err).Str("provider", string(probe.Name())).Msg("health probe failed")
		return domain.ProviderHealth{Configured: true, Status: domain.HealthError, Error: publicMessage(err)}
	}
}
