package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/core/ports/mocks"
	"marketplace-integrations/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var validQuoteRequest = ports.QuoteRequest{
	From:     domain.Address{CountryCode: "DE", PostalCode: "10115"},
	To:       domain.Address{CountryCode: "AT", CityName: "Wien"},
	Packages: []domain.Package{{Weight: 2, Length: 30, Width: 20, Height: 10}},
}

func quoter(ctrl *gomock.Controller, p domain.Provider, mode domain.ShippingMode) *mocks.MockRateQuoter {
	q := mocks.NewMockRateQuoter(ctrl)
	q.EXPECT().Name().Return(p).AnyTimes()
	q.EXPECT().Mode().Return(mode).AnyTimes()
	return q
}

func quote(p domain.Provider, mode domain.ShippingMode, price int64) domain.RateQuote {
	return domain.RateQuote{Provider: p, Mode: mode, TotalPrice: price, Currency: "EUR"}
}

func TestShippingService_QuoteRates_MergesAndRanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	air := quoter(ctrl, domain.ProviderDHL, domain.ModeAir)
	sea := quoter(ctrl, domain.ProviderTTOM, domain.ModeSea)

	air.EXPECT().QuoteRates(gomock.Any(), validQuoteRequest.From, validQuoteRequest.To, validQuoteRequest.Packages).
		Return([]domain.RateQuote{{TotalPrice: 4200, Currency: "EUR", ServiceName: "EXPRESS"}}, nil)
	sea.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RateQuote{{TotalPrice: 3000, Currency: "EUR"}}, nil)

	svc := NewShippingService([]ports.RateQuoter{air, sea}, newTestLogger())
	result, err := svc.QuoteRates(context.Background(), validQuoteRequest)
	require.NoError(t, err)

	require.Len(t, result.AllRates, 2)
	assert.Equal(t, domain.ProviderDHL, result.AllRates[0].Provider)
	assert.Equal(t, domain.ModeAir, result.AllRates[0].Mode)
	assert.Equal(t, domain.ProviderTTOM, result.AllRates[1].Provider)
	assert.Empty(t, result.Failures)

	assert.Equal(t, int64(3000), result.Options.Cheapest.TotalPrice)
	assert.Equal(t, domain.ProviderDHL, result.Options.Fastest.Provider)
	// 4200 <= 1.5 * 3000
	assert.Equal(t, domain.ProviderDHL, result.Options.Best.Provider)
}

func TestShippingService_QuoteRates_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	air := quoter(ctrl, domain.ProviderDHL, domain.ModeAir)
	sea := quoter(ctrl, domain.ProviderTTOM, domain.ModeSea)

	air.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrProviderUnavailable("dhl", 503, errors.New("upstream body")))
	sea.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RateQuote{{TotalPrice: 9000, Currency: "EUR"}}, nil)

	svc := NewShippingService([]ports.RateQuoter{air, sea}, newTestLogger())
	result, err := svc.QuoteRates(context.Background(), validQuoteRequest)
	require.NoError(t, err)

	require.Len(t, result.AllRates, 1)
	assert.Equal(t, []domain.ProviderFailure{{Provider: domain.ProviderDHL, Error: "Provider dhl unavailable (HTTP 503)"}}, result.Failures)
	assert.Equal(t, domain.ProviderTTOM, result.Options.Cheapest.Provider)
	assert.Equal(t, domain.ProviderTTOM, result.Options.Fastest.Provider)
	assert.Equal(t, domain.ProviderTTOM, result.Options.Best.Provider)
}

func TestShippingService_QuoteRates_AllFailYieldsNullOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	air := quoter(ctrl, domain.ProviderDHL, domain.ModeAir)
	air.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	svc := NewShippingService([]ports.RateQuoter{air}, newTestLogger())
	result, err := svc.QuoteRates(context.Background(), validQuoteRequest)
	require.NoError(t, err)

	assert.NotNil(t, result.AllRates)
	assert.Empty(t, result.AllRates)
	assert.Nil(t, result.Options.Cheapest)
	assert.Nil(t, result.Options.Fastest)
	assert.Nil(t, result.Options.Best)
	assert.Equal(t, "boom", result.Failures[0].Error)
}

func TestShippingService_QuoteRates_RunsConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	air := quoter(ctrl, domain.ProviderDHL, domain.ModeAir)
	sea := quoter(ctrl, domain.ProviderTTOM, domain.ModeSea)

	var inFlight, peak int32
	slow := func(context.Context, domain.Address, domain.Address, []domain.Package) ([]domain.RateQuote, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return []domain.RateQuote{{TotalPrice: 100}}, nil
	}
	air.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(slow)
	sea.EXPECT().QuoteRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(slow)

	svc := NewShippingService([]ports.RateQuoter{air, sea}, newTestLogger())
	_, err := svc.QuoteRates(context.Background(), validQuoteRequest)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&peak))
}

func TestShippingService_QuoteRates_ValidationBeforeFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	air := mocks.NewMockRateQuoter(ctrl)

	svc := NewShippingService([]ports.RateQuoter{air}, newTestLogger())
	_, err := svc.QuoteRates(context.Background(), ports.QuoteRequest{
		From: domain.Address{CountryCode: "DEU", PostalCode: "10115"},
		To:   domain.Address{CountryCode: "AT", PostalCode: "1010"},
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestRankQuotes(t *testing.T) {
	dhl, ttom := domain.ProviderDHL, domain.ProviderTTOM
	air, sea := domain.ModeAir, domain.ModeSea

	tests := []struct {
		name                    string
		quotes                  []domain.RateQuote
		cheapest, fastest, best int64
	}{
		{"air within 1.5x wins best", []domain.RateQuote{quote(dhl, air, 150), quote(ttom, sea, 100)}, 100, 150, 150},
		{"air above 1.5x falls back", []domain.RateQuote{quote(dhl, air, 151), quote(ttom, sea, 100)}, 100, 151, 100},
		{"second air quote qualifies", []domain.RateQuote{quote(dhl, air, 500), quote(dhl, air, 140), quote(ttom, sea, 100)}, 100, 500, 140},
		{"sea only", []domain.RateQuote{quote(ttom, sea, 300), quote(ttom, sea, 200)}, 200, 300, 200},
		{"air only", []domain.RateQuote{quote(dhl, air, 80)}, 80, 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := rankQuotes(tt.quotes)
			assert.Equal(t, tt.cheapest, opts.Cheapest.TotalPrice)
			assert.Equal(t, tt.fastest, opts.Fastest.TotalPrice)
			assert.Equal(t, tt.best, opts.Best.TotalPrice)
			for _, q := range tt.quotes {
				assert.LessOrEqual(t, opts.Cheapest.TotalPrice, q.TotalPrice)
			}
		})
	}
}

func TestRankQuotes_StableOnTies(t *testing.T) {
	first := domain.RateQuote{Provider: domain.ProviderTTOM, Mode: domain.ModeSea, TotalPrice: 100, ServiceName: "first"}
	second := domain.RateQuote{Provider: domain.ProviderTTOM, Mode: domain.ModeSea, TotalPrice: 100, ServiceName: "second"}

	opts := rankQuotes([]domain.RateQuote{first, second})
	assert.Equal(t, "first", opts.Cheapest.ServiceName)
}

func TestRankQuotes_Empty(t *testing.T) {
	assert.Equal(t, domain.ShippingOptions{}, rankQuotes(nil))
}

func TestRankQuotes_OptionsAreCopies(t *testing.T) {
	quotes := []domain.RateQuote{quote(domain.ProviderDHL, domain.ModeAir, 100)}
	opts := rankQuotes(quotes)
	opts.Best.TotalPrice = 1
	assert.Equal(t, int64(100), quotes[0].TotalPrice)
}
