package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-integrations/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DeadLetterKey is the Redis list holding webhooks awaiting manual
// reconciliation.
const DeadLetterKey = "webhooks:dead_letter"

// maxDeadLetters bounds the list; the webhook log table keeps the full
// history.
const maxDeadLetters = 10_000

// DeadLetterQueue implements ports.DeadLetterQueue on a capped Redis list,
// newest first.
type DeadLetterQueue struct {
	client goredis.UniversalClient
}

func NewDeadLetterQueue(client goredis.UniversalClient) *DeadLetterQueue {
	return &DeadLetterQueue{client: client}
}

func (q *DeadLetterQueue) Push(ctx context.Context, letter *domain.DeadLetter) error {
	raw, err := json.Marshal(letter)
	if err != nil {
		return fmt.Errorf("encode dead letter: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.LPush(ctx, DeadLetterKey, raw)
	pipe.LTrim(ctx, DeadLetterKey, 0, maxDeadLetters-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis dead letter push: %w", err)
	}
	return nil
}

// List returns up to limit letters, newest first. Undecodable entries are
// skipped.
func (q *DeadLetterQueue) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	if limit <= 0 {
		return []domain.DeadLetter{}, nil
	}
	raws, err := q.client.LRange(ctx, DeadLetterKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis dead letter list: %w", err)
	}

	letters := make([]domain.DeadLetter, 0, len(raws))
	for _, raw := range raws {
		var l domain.DeadLetter
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			continue
		}
		letters = append(letters, l)
	}
	return letters, nil
}
