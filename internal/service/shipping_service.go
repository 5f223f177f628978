package service

import (
	"context"
	"errors"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ShippingServiceImpl implements ports.ShippingService.
type ShippingServiceImpl struct {
	quoters []ports.RateQuoter
	log     zerolog.Logger
}

// NewShippingService creates the rate shopper. quoters are asked in parallel
// and their quotes listed in the order given here.
func NewShippingService(quoters []ports.RateQuoter, log zerolog.Logger) *ShippingServiceImpl {
	return &ShippingServiceImpl{
		quoters: quoters,
		log:     log.With().Str("component", "shipping").Logger(),
	}
}

type quoteOutcome struct {
	quotes []domain.RateQuote
	err    error
}

// QuoteRates asks every carrier for rates concurrently. A failing carrier
// is reported in Failures and never fails the whole request.
func (s *ShippingServiceImpl) QuoteRates(ctx context.Context, req ports.QuoteRequest) (*domain.RateShoppingResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	outcomes := make([]quoteOutcome, len(s.quoters))
	var g errgroup.Group
	for i, q := range s.quoters {
		g.Go(func() error {
			quotes, err := q.QuoteRates(ctx, req.From, req.To, req.Packages)
			outcomes[i] = quoteOutcome{quotes: quotes, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.RateShoppingResult{
		AllRates: []domain.RateQuote{},
		Failures: []domain.ProviderFailure{},
	}
	for i, q := range s.quoters {
		out := outcomes[i]
		if out.err != nil {
			s.log.Warn().Err(out.err).Str("provider", string(q.Name())).Msg("rate quote failed, continuing with partial results")
			metrics.RateShoppingFailuresTotal.WithLabelValues(string(q.Name())).Inc()
			result.Failures = append(result.Failures, domain.ProviderFailure{
				Provider: q.Name(),
				Error:    publicMessage(out.err),
			})
			continue
		}
		for _, quote := range out.quotes {
			quote.Provider = q.Name()
			quote.Mode = q.Mode()
			result.AllRates = append(result.AllRates, quote)
		}
	}

	result.Options = rankQuotes(result.AllRates)
	return result, nil
}

// rankQuotes labels the cheapest quote, the fastest (first air quote, else
// the first quote) and the best value (first air quote costing at most 1.5x
// the cheapest, else the cheapest). Ties keep the earliest quote.
func rankQuotes(quotes []domain.RateQuote) domain.ShippingOptions {
	if len(quotes) == 0 {
		return domain.ShippingOptions{}
	}

	cheapest := 0
	for i, q := range quotes {
		if q.TotalPrice < quotes[cheapest].TotalPrice {
			cheapest = i
		}
	}

	fastest, best := 0, cheapest
	foundAir, foundBest := false, false
	for i, q := range quotes {
		if q.Mode != domain.ModeAir {
			continue
		}
		if !foundAir {
			fastest, foundAir = i, true
		}
		// Integer form of price <= 1.5 * cheapest.
		if !foundBest && 2*q.TotalPrice <= 3*quotes[cheapest].TotalPrice {
			best, foundBest = i, true
		}
	}

	// Copies keep the options independent of the all_rates slice.
	return domain.ShippingOptions{
		Cheapest: copyQuote(quotes[cheapest]),
		Fastest:  copyQuote(quotes[fastest]),
		Best:     copyQuote(quotes[best]),
	}
}

func copyQuote(q domain.RateQuote) *domain.RateQuote {
	return &q
}

// publicMessage is the client-safe text of err.
func publicMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
