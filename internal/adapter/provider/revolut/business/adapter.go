// Package business adapts the Revolut Business API to the payout port.
package business

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"marketplace-integrations/config"
	"marketplace-integrations/internal/adapter/provider"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	liveBaseURL    = "https://b2b.revolut.com/api/1.0"
	sandboxBaseURL = "https://sandbox-b2b.revolut.com/api/1.0"
)

var _ ports.BusinessPayouts = (*Adapter)(nil)

// Adapter is the Revolut Business payout processor.
type Adapter struct {
	cfg       config.RevolutBusinessConfig
	transport provider.Transport
	log       zerolog.Logger
	now       func() time.Time
}

func New(cfg config.RevolutBusinessConfig, timeout time.Duration, log zerolog.Logger) *Adapter {
	a := &Adapter{
		cfg: cfg,
		log: log.With().Str("provider", string(domain.ProviderRevolutBusiness)).Logger(),
		now: time.Now,
	}
	a.transport = provider.Select(domain.ProviderRevolutBusiness, cfg.IsConfigured(), func() *provider.HTTPTransport {
		signer := &assertionSigner{keyPath: cfg.CertPath, issuer: cfg.OrgID, subject: cfg.APIKeyID, now: time.Now}
		sandbox := provider.IsSandboxCredential(cfg.APIKeyID, "sandbox")
		base := provider.BaseURL(cfg.BaseURL, liveBaseURL, sandboxBaseURL, sandbox)
		return provider.NewHTTPTransport(domain.ProviderRevolutBusiness, base, timeout, signer.authorize)
	}, a.simulate, a.log)
	return a
}

func (a *Adapter) Name() domain.Provider { return domain.ProviderRevolutBusiness }

func (a *Adapter) IsConfigured() bool {
	return a.cfg.IsConfigured()
}

// CreatePayout sends a transfer. The caller reference doubles as the
// processor's request id so a retried call cannot pay twice.
func (a *Adapter) CreatePayout(ctx context.Context, req domain.PayoutRequest) (*domain.Payout, error) {
	body := payRequest{
		RequestID: req.Reference,
		Receiver: receiver{
			Name:  req.BeneficiaryName,
			Email: req.BeneficiaryEmail,
			IBAN:  req.IBAN,
			BIC:   req.BIC,
		},
		Amount:    provider.FromMinor(req.Amount),
		Currency:  req.Currency,
		Reference: req.Reference,
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: "/pay", Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderRevolutBusiness, resp)
	}

	var out payResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderRevolutBusiness, err)
	}
	if out.ID == "" {
		return nil, provider.DecodeError(domain.ProviderRevolutBusiness, fmt.Errorf("pay response missing id"))
	}

	createdAt := out.CreatedAt
	if createdAt.IsZero() {
		createdAt = a.now().UTC()
	}
	return &domain.Payout{
		ID:               out.ID,
		State:            out.State,
		BeneficiaryName:  req.BeneficiaryName,
		BeneficiaryEmail: req.BeneficiaryEmail,
		BIC:              req.BIC,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Reference:        req.Reference,
		CreatedAt:        createdAt,
	}, nil
}

// ListPayouts returns at most limit transfers, most recent first.
func (a *Adapter) ListPayouts(ctx context.Context, limit int) ([]domain.Payout, error) {
	query := url.Values{"type": {"transfer"}}
	if limit > 0 {
		query.Set("count", strconv.Itoa(limit))
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodGet, Path: "/transactions", Query: query})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderRevolutBusiness, resp)
	}

	var txs []transaction
	if err := resp.Decode(&txs); err != nil {
		return nil, provider.DecodeError(domain.ProviderRevolutBusiness, err)
	}

	payouts := make([]domain.Payout, 0, len(txs))
	for _, tx := range txs {
		payouts = append(payouts, toPayout(tx))
	}
	sort.SliceStable(payouts, func(i, j int) bool { return payouts[i].CreatedAt.After(payouts[j].CreatedAt) })
	if limit > 0 && len(payouts) > limit {
		payouts = payouts[:limit]
	}
	return payouts, nil
}

// Probe lists a single transfer.
func (a *Adapter) Probe(ctx context.Context) error {
	_, err := a.ListPayouts(ctx, 1)
	return err
}

func toPayout(tx transaction) domain.Payout {
	p := domain.Payout{
		ID:        tx.ID,
		State:     tx.State,
		Reference: tx.Reference,
		CreatedAt: tx.CreatedAt,
	}
	if len(tx.Legs) > 0 {
		l := tx.Legs[0]
		p.Amount = provider.ToMinor(l.Amount.Abs())
		p.Currency = l.Currency
		if l.Counterparty != nil {
			p.BeneficiaryName = l.Counterparty.Name
		}
	}
	return p
}
