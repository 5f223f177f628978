package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsRegistered(t *testing.T) {
	// Vec collectors only appear once a label set exists.
	ProviderRequestsTotal.WithLabelValues("dhl", "success")
	WebhooksReceivedTotal.WithLabelValues("ORDER_COMPLETED", "processed")

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["mkt_provider_requests_total"])
	assert.True(t, names["mkt_webhooks_received_total"])
	assert.True(t, names["mkt_webhook_dead_letters_total"])
}

func TestDeadLetterCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(WebhookDeadLettersTotal)
	WebhookDeadLettersTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(WebhookDeadLettersTotal))
}
