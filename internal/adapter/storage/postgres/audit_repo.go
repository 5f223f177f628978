package postgres

import (
	"context"
	"fmt"

	"marketplace-integrations/internal/core/domain"
)

type AuditRepo struct {
	pool Pool
}

func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, actor, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.ID, log.Actor, string(log.Action), log.ResourceType,
		log.ResourceID, log.Details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
