// Package provider holds the transport seam shared by the external provider
// adapters. Adapters shape payloads and map responses; a Transport decides
// whether the request reaches the real API or a deterministic simulator.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 12 * time.Second

	maxResponseBytes = 4 << 20
)

// Request is a provider call before it is bound to a base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any // JSON-encoded when non-nil
}

// Response is the raw provider answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding provider response: %w", err)
	}
	return nil
}

// Transport sends a Request to a provider.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// HTTPClient abstracts *http.Client for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Authorizer decorates an outgoing request with provider credentials.
type Authorizer func(ctx context.Context, req *http.Request) error

// HTTPTransport talks to the real provider API.
type HTTPTransport struct {
	provider  domain.Provider
	baseURL   string
	client    HTTPClient
	authorize Authorizer
}

// NewHTTPTransport creates a transport bound to baseURL. A zero timeout
// selects DefaultTimeout. authorize may be nil.
func NewHTTPTransport(provider domain.Provider, baseURL string, timeout time.Duration, authorize Authorizer) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		provider:  provider,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		authorize: authorize,
	}
}

// BaseURL returns the URL requests are sent to.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// Do sends the request. Network failures come back as ProviderUnavailable;
// any HTTP status, including non-2xx, is returned as a Response for the
// adapter to classify.
func (t *HTTPTransport) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := t.do(ctx, req)
	metrics.ProviderRequestDuration.WithLabelValues(string(t.provider)).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.ProviderRequestsTotal.WithLabelValues(string(t.provider), "network_error").Inc()
		return nil, Unavailable(t.provider, err)
	case !resp.OK():
		metrics.ProviderRequestsTotal.WithLabelValues(string(t.provider), "http_error").Inc()
	default:
		metrics.ProviderRequestsTotal.WithLabelValues(string(t.provider), "success").Inc()
	}
	return resp, nil
}

func (t *HTTPTransport) do(ctx context.Context, req Request) (*Response, error) {
	target := t.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.authorize != nil {
		if err := t.authorize(ctx, httpReq); err != nil {
			return nil, fmt.Errorf("authorizing request: %w", err)
		}
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return &Response{StatusCode: httpResp.StatusCode, Body: raw}, nil
}

// Responder produces the simulated status and JSON body for a request.
type Responder func(req Request) (int, any)

// SimulatedTransport answers requests in-process with provider-shaped JSON.
// It is selected when an adapter has no credentials.
type SimulatedTransport struct {
	provider domain.Provider
	respond  Responder
	log      zerolog.Logger
}

// NewSimulatedTransport creates a simulator for provider.
func NewSimulatedTransport(provider domain.Provider, respond Responder, log zerolog.Logger) *SimulatedTransport {
	return &SimulatedTransport{provider: provider, respond: respond, log: log}
}

// Do encodes the request body exactly as the HTTP transport would, then
// answers from the responder.
func (t *SimulatedTransport) Do(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable(t.provider, err)
	}
	if req.Body != nil {
		if _, err := json.Marshal(req.Body); err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
	}

	t.log.Warn().
		Str("provider", string(t.provider)).
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("simulation mode: request answered locally, provider not contacted")

	status, body := t.respond(req)
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding simulated response: %w", err)
	}
	metrics.ProviderRequestsTotal.WithLabelValues(string(t.provider), "simulated").Inc()
	return &Response{StatusCode: status, Body: raw}, nil
}

// Select returns the real transport when configured and the simulator
// otherwise. The choice is made once and logged; simulation is a WARN so a
// deployment that believes itself live notices.
func Select(p domain.Provider, configured bool, live func() *HTTPTransport, respond Responder, log zerolog.Logger) Transport {
	if configured {
		t := live()
		log.Info().Str("provider", string(p)).Str("base_url", t.BaseURL()).Msg("provider adapter in live mode")
		return t
	}
	log.Warn().Str("provider", string(p)).Msg("provider credentials missing, adapter running in SIMULATION mode")
	return NewSimulatedTransport(p, respond, log)
}
