package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultWebhookLogLimit = 50
	maxWebhookLogLimit     = 200
)

// Webhook outcomes as reported to metrics.
const (
	outcomeProcessed    = "processed"
	outcomeDeadLettered = "dead_lettered"
	outcomeRejected     = "rejected"
	outcomeMalformed    = "malformed"
	outcomeLogFailed    = "log_failed"
)

// WebhookReconcilerImpl implements ports.WebhookReconciler.
type WebhookReconcilerImpl struct {
	merchant ports.MerchantPayments
	orders   ports.OrderRepository
	sessions ports.CheckoutSessionRepository
	logs     ports.WebhookLogRepository
	dlq      ports.DeadLetterQueue
	cache    ports.IdempotencyCache
	log      zerolog.Logger
	now      func() time.Time
}

// NewWebhookReconciler builds the reconciler. cache is the checkout
// idempotency cache; entries are dropped when a session changes status.
func NewWebhookReconciler(
	merchant ports.MerchantPayments,
	orders ports.OrderRepository,
	sessions ports.CheckoutSessionRepository,
	logs ports.WebhookLogRepository,
	dlq ports.DeadLetterQueue,
	cache ports.IdempotencyCache,
	log zerolog.Logger,
) *WebhookReconcilerImpl {
	return &WebhookReconcilerImpl{
		merchant: merchant,
		orders:   orders,
		sessions: sessions,
		logs:     logs,
		dlq:      dlq,
		cache:    cache,
		log:      log.With().Str("component", "webhook_reconciler").Logger(),
		now:      time.Now,
	}
}

// Handle verifies, records and applies one merchant processor webhook.
// Once the log row is written the sender is always acknowledged, except for
// a body that is not JSON. Failures to apply the event are dead-lettered.
func (r *WebhookReconcilerImpl) Handle(ctx context.Context, signature string, payload []byte) error {
	if !r.merchant.VerifyWebhook(signature, payload) {
		r.log.Warn().Int("payload_bytes", len(payload)).Msg("webhook rejected: invalid signature")
		metrics.WebhooksReceivedTotal.WithLabelValues("", outcomeRejected).Inc()
		return apperror.ErrInvalidSignature()
	}

	var event domain.WebhookEvent
	parseErr := json.Unmarshal(payload, &event)

	entry := &domain.WebhookLogEntry{
		ID:        uuid.New(),
		Provider:  domain.ProviderRevolutMerchant,
		EventType: event.Event,
		Payload:   string(payload),
		Signature: signature,
		CreatedAt: r.now().UTC(),
	}
	if parseErr != nil {
		msg := fmt.Sprintf("malformed payload: %v", parseErr)
		entry.EventType = ""
		entry.Error = &msg
	}

	if err := r.logs.Create(ctx, entry); err != nil {
		r.log.Error().Err(err).Str("event", entry.EventType).Msg("webhook log write failed")
		metrics.WebhooksReceivedTotal.WithLabelValues(eventLabel(entry.EventType), outcomeLogFailed).Inc()
		return apperror.ErrDatabaseError(err)
	}

	if parseErr != nil {
		r.log.Warn().Err(parseErr).Str("log_id", entry.ID.String()).Msg("webhook payload is not valid JSON")
		metrics.WebhooksReceivedTotal.WithLabelValues("", outcomeMalformed).Inc()
		return apperror.Validation("Malformed webhook payload")
	}

	outcome := r.apply(ctx, entry, event)
	metrics.WebhooksReceivedTotal.WithLabelValues(eventLabel(event.Event), outcome).Inc()
	return nil
}

func (r *WebhookReconcilerImpl) apply(ctx context.Context, entry *domain.WebhookLogEntry, event domain.WebhookEvent) string {
	var data domain.WebhookEventData
	if len(event.Data) > 0 {
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return r.deadLetter(ctx, entry, "", fmt.Sprintf("unreadable event data: %v", err))
		}
	}
	ref := data.MerchantOrderExtRef

	switch event.Event {
	case domain.EventOrderCompleted:
		if ref == "" {
			return r.deadLetter(ctx, entry, "", "event has no merchant_order_ext_ref")
		}
		if reason := r.markPaid(ctx, ref); reason != "" {
			return r.deadLetter(ctx, entry, ref, reason)
		}
		if err := r.sessions.UpdateStatusByReference(ctx, ref, domain.CheckoutStatusCompleted); err != nil {
			return r.deadLetter(ctx, entry, ref, fmt.Sprintf("checkout session update failed: %v", err))
		}
		r.forgetSession(ctx, ref)

	case domain.EventOrderPaymentFailed, domain.EventOrderPaymentDecline:
		r.log.Info().Str("event", event.Event).Str("reference", ref).Msg("payment not completed")
		if ref != "" {
			if err := r.sessions.UpdateStatusByReference(ctx, ref, domain.CheckoutStatusFailed); err != nil {
				return r.deadLetter(ctx, entry, ref, fmt.Sprintf("checkout session update failed: %v", err))
			}
			r.forgetSession(ctx, ref)
		}

	default:
		r.log.Info().Str("event", event.Event).Str("log_id", entry.ID.String()).Msg("unhandled webhook event logged")
	}

	if err := r.logs.MarkProcessed(ctx, entry.ID); err != nil {
		r.log.Error().Err(err).Str("log_id", entry.ID.String()).Msg("failed to mark webhook processed")
	}
	return outcomeProcessed
}

// forgetSession drops the cached checkout for ref so a repeat checkout
// reads the new status from the database.
func (r *WebhookReconcilerImpl) forgetSession(ctx context.Context, ref string) {
	key := checkoutIdempotencyKey(ref)
	if err := r.cache.Delete(ctx, key); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("failed to drop cached checkout session")
	}
}

// markPaid applies the paid transition to the order with reference ref and
// returns a non-empty reason when it could not.
func (r *WebhookReconcilerImpl) markPaid(ctx context.Context, ref string) string {
	order, err := r.orders.GetByReference(ctx, ref)
	if err != nil {
		return fmt.Sprintf("order lookup failed: %v", err)
	}
	if order == nil {
		return "no order matches reference"
	}

	switch order.PaidTransition() {
	case domain.PaidNoop:
		r.log.Debug().Str("reference", ref).Msg("order already paid")
	case domain.PaidSkip:
		r.log.Info().Str("reference", ref).Str("status", string(order.Status)).Msg("order past paid, status kept")
	case domain.PaidApply:
		changed, err := r.orders.UpdateStatus(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusPaid)
		if err != nil {
			return fmt.Sprintf("order update failed: %v", err)
		}
		if !changed {
			r.log.Info().Str("reference", ref).Msg("order left pending before update, status kept")
			return ""
		}
		r.log.Info().Str("reference", ref).Str("order_id", order.ID.String()).Msg("order marked paid")
	}
	return ""
}

// deadLetter records why entry could not be applied and queues it for
// manual reconciliation. The sender is still acknowledged.
func (r *WebhookReconcilerImpl) deadLetter(ctx context.Context, entry *domain.WebhookLogEntry, ref, reason string) string {
	r.log.Error().
		Str("log_id", entry.ID.String()).
		Str("event", entry.EventType).
		Str("reference", ref).
		Str("reason", reason).
		Msg("webhook dead-lettered")
	metrics.WebhookDeadLettersTotal.Inc()

	if err := r.logs.RecordError(ctx, entry.ID, reason); err != nil {
		r.log.Error().Err(err).Str("log_id", entry.ID.String()).Msg("failed to record webhook error")
	}
	letter := &domain.DeadLetter{
		LogID:     entry.ID,
		EventType: entry.EventType,
		Reference: ref,
		Reason:    reason,
		At:        r.now().UTC(),
	}
	if err := r.dlq.Push(ctx, letter); err != nil {
		r.log.Error().Err(err).Str("log_id", entry.ID.String()).Msg("dead-letter push failed")
	}
	return outcomeDeadLettered
}

// ListLogs returns webhook log rows, newest first.
func (r *WebhookReconcilerImpl) ListLogs(ctx context.Context, processed *bool, limit int) ([]domain.WebhookLogEntry, error) {
	entries, err := r.logs.List(ctx, processed, clampLimit(limit, defaultWebhookLogLimit, maxWebhookLogLimit))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if entries == nil {
		entries = []domain.WebhookLogEntry{}
	}
	return entries, nil
}

// eventLabel bounds the metric label set to known event types.
func eventLabel(event string) string {
	switch event {
	case domain.EventOrderCompleted, domain.EventOrderPaymentFailed, domain.EventOrderPaymentDecline:
		return event
	case "":
		return ""
	}
	return "other"
}
