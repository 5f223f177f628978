package service

import (
	"context"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates the audit trail writer. With a nil repo entries
// only go to the log.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log.With().Str("component", "audit").Logger()}
}

// Log records entry in the background. The request context is not reused
// because the request may finish first.
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	go func() {
		s.log.Info().
			Str("action", string(entry.Action)).
			Str("actor", entry.Actor).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress).
			Msg("audit")

		if s.repo == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}
