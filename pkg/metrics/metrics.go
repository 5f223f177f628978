// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mkt_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mkt_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ProviderRequestsTotal counts outbound provider calls. outcome is one of
	// success, http_error, network_error or simulated.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mkt_provider_requests_total",
			Help: "Total number of requests sent to external providers",
		},
		[]string{"provider", "outcome"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mkt_provider_request_duration_seconds",
			Help:    "Latency of requests to external providers",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"provider"},
	)

	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mkt_webhooks_received_total",
			Help: "Webhooks received, by event type and outcome",
		},
		[]string{"event", "outcome"},
	)

	WebhookDeadLettersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mkt_webhook_dead_letters_total",
			Help: "Accepted webhooks that could not be applied and need manual reconciliation",
		},
	)

	RateShoppingFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mkt_rate_shopping_failures_total",
			Help: "Provider failures downgraded to partial results during rate shopping",
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(WebhooksReceivedTotal)
	prometheus.MustRegister(WebhookDeadLettersTotal)
	prometheus.MustRegister(RateShoppingFailuresTotal)
}
