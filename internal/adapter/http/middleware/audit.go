package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful writes after the handler has responded.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Actor:        c.GetString(CtxAdminSubject),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/checkout":
		return domain.AuditActionCheckout, "checkout_session"
	case "/api/v1/shipping/air/bookings":
		return domain.AuditActionBookAir, "shipment"
	case "/api/v1/shipping/sea/bookings":
		return domain.AuditActionBookSea, "shipment"
	case "/api/v1/admin/payouts":
		return domain.AuditActionPayout, "payout"
	}
	return "", ""
}
