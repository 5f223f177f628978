// Package merchant adapts the Revolut Merchant API to the hosted checkout port.
package merchant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace-integrations/config"
	"marketplace-integrations/internal/adapter/provider"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	liveBaseURL    = "https://merchant.revolut.com/api/1.0"
	sandboxBaseURL = "https://sandbox-merchant.revolut.com/api/1.0"
)

var _ ports.MerchantPayments = (*Adapter)(nil)

// Adapter is the Revolut Merchant hosted checkout processor.
type Adapter struct {
	cfg       config.RevolutMerchantConfig
	publicURL string
	transport provider.Transport
	signer    ports.SignatureService
	log       zerolog.Logger
	now       func() time.Time
}

// New builds the adapter. publicURL is where this service is reachable; the
// simulator points checkout URLs at its demo route.
func New(cfg config.RevolutMerchantConfig, publicURL string, timeout time.Duration, signer ports.SignatureService, log zerolog.Logger) *Adapter {
	a := &Adapter{
		cfg:       cfg,
		publicURL: strings.TrimRight(publicURL, "/"),
		signer:    signer,
		log:       log.With().Str("provider", string(domain.ProviderRevolutMerchant)).Logger(),
		now:       time.Now,
	}
	a.transport = provider.Select(domain.ProviderRevolutMerchant, cfg.IsConfigured(), func() *provider.HTTPTransport {
		sandbox := provider.IsSandboxCredential(cfg.APIKey, "sk_test", "sandbox")
		base := provider.BaseURL(cfg.BaseURL, liveBaseURL, sandboxBaseURL, sandbox)
		return provider.NewHTTPTransport(domain.ProviderRevolutMerchant, base, timeout, a.authorize)
	}, a.simulate, a.log)

	switch {
	case cfg.WebhookSecret == "" && cfg.IsConfigured():
		a.log.Error().Msg("live merchant API key without webhook secret, signature verification will be SKIPPED")
	case cfg.WebhookSecret == "":
		a.log.Warn().Msg("webhook secret missing, signature verification will be SKIPPED")
	}
	return a
}

func (a *Adapter) authorize(_ context.Context, req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	return nil
}

func (a *Adapter) Name() domain.Provider { return domain.ProviderRevolutMerchant }

func (a *Adapter) IsConfigured() bool {
	return a.cfg.IsConfigured()
}

// CreateCheckout opens a hosted checkout order. The session starts pending;
// only a verified webhook moves it on.
func (a *Adapter) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	body := orderRequest{
		Amount:              req.Amount,
		Currency:            req.Currency,
		MerchantOrderExtRef: req.Reference,
		CustomerEmail:       req.Customer.Email,
		Description:         req.Description,
		RedirectURL:         req.SuccessURL,
		CancelURL:           req.CancelURL,
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: "/orders", Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderRevolutMerchant, resp)
	}

	var out order
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderRevolutMerchant, err)
	}
	if out.ID == "" || out.CheckoutURL == "" {
		return nil, provider.DecodeError(domain.ProviderRevolutMerchant, fmt.Errorf("order response missing id or checkout_url"))
	}

	createdAt := out.CreatedAt
	if createdAt.IsZero() {
		createdAt = a.now().UTC()
	}
	return &domain.CheckoutSession{
		ID:            out.ID,
		PublicID:      out.PublicID,
		CheckoutURL:   out.CheckoutURL,
		Status:        domain.CheckoutStatusPending,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerEmail: req.Customer.Email,
		Reference:     req.Reference,
		SuccessURL:    req.SuccessURL,
		Simulated:     !a.IsConfigured(),
		CreatedAt:     createdAt,
	}, nil
}

// VerifyWebhook checks the HMAC-SHA256 signature of the raw payload. The hex
// digest must match byte for byte, case included. Without a webhook secret
// every payload is accepted and the skip is logged.
func (a *Adapter) VerifyWebhook(signature string, payload []byte) bool {
	if a.cfg.WebhookSecret == "" {
		a.log.Warn().Msg("webhook signature verification SKIPPED: no webhook secret configured")
		return true
	}
	sig := strings.TrimSpace(signature)
	for _, prefix := range []string{"sha256=", "v1="} {
		if strings.HasPrefix(sig, prefix) {
			sig = strings.TrimPrefix(sig, prefix)
			break
		}
	}
	if sig == "" {
		return false
	}
	return a.signer.Verify(a.cfg.WebhookSecret, payload, sig)
}

// Probe lists a single order.
func (a *Adapter) Probe(ctx context.Context) error {
	resp, err := a.transport.Do(ctx, provider.Request{
		Method: http.MethodGet,
		Path:   "/orders",
		Query:  url.Values{"limit": {"1"}},
	})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return provider.StatusError(domain.ProviderRevolutMerchant, resp)
	}
	return nil
}
