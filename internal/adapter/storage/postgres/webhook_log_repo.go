package postgres

import (
	"context"
	"fmt"
	"time"

	"marketplace-integrations/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookLogRepo implements ports.WebhookLogRepository. Rows are never
// deleted; only the processing columns change after insert.
type WebhookLogRepo struct {
	pool Pool
}

func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

func (r *WebhookLogRepo) Create(ctx context.Context, e *domain.WebhookLogEntry) error {
	query := `INSERT INTO webhook_logs (id, provider, event_type, payload, signature, processed, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Provider, e.EventType, e.Payload, e.Signature, e.Processed, e.Error, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// MarkProcessed flags the row as applied and clears any earlier error.
func (r *WebhookLogRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE webhook_logs SET processed = true, processed_at = $1, error = NULL WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark webhook processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

func (r *WebhookLogRepo) RecordError(ctx context.Context, id uuid.UUID, message string) error {
	query := `UPDATE webhook_logs SET error = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, message, id); err != nil {
		return fmt.Errorf("record webhook error: %w", err)
	}
	return nil
}

// List returns the newest rows first. A nil processed returns every row.
func (r *WebhookLogRepo) List(ctx context.Context, processed *bool, limit int) ([]domain.WebhookLogEntry, error) {
	query := `SELECT id, provider, event_type, payload, signature, processed, error, created_at, processed_at
		FROM webhook_logs`
	args := []any{}
	if processed != nil {
		query += ` WHERE processed = $1`
		args = append(args, *processed)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list webhook logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.WebhookLogEntry
	for rows.Next() {
		var e domain.WebhookLogEntry
		if err := rows.Scan(
			&e.ID, &e.Provider, &e.EventType, &e.Payload, &e.Signature,
			&e.Processed, &e.Error, &e.CreatedAt, &e.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook log rows: %w", err)
	}
	return entries, nil
}
