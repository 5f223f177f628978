package handler

import (
	"marketplace-integrations/internal/adapter/http/dto"
	"marketplace-integrations/internal/adapter/http/middleware"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultDeadLetterLimit = 50

// AdminHandler serves payouts and manual webhook reconciliation to
// operators holding an admin token.
type AdminHandler struct {
	payoutSvc  ports.PayoutService
	reconciler ports.WebhookReconciler
	dlq        ports.DeadLetterQueue
}

func NewAdminHandler(payoutSvc ports.PayoutService, reconciler ports.WebhookReconciler, dlq ports.DeadLetterQueue) *AdminHandler {
	return &AdminHandler{payoutSvc: payoutSvc, reconciler: reconciler, dlq: dlq}
}

// CreatePayout handles POST /api/v1/admin/payouts.
func (h *AdminHandler) CreatePayout(c *gin.Context) {
	var in ports.PayoutInput
	if !bindJSON(c, &in) {
		return
	}

	payout, err := h.payoutSvc.CreatePayout(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, payout.ID)
	response.Created(c, dto.NewPayoutResponse(payout))
}

// ListPayouts handles GET /api/v1/admin/payouts?limit=.
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Query("limit"))
	if err != nil {
		response.Error(c, err)
		return
	}

	payouts, err := h.payoutSvc.ListPayouts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutListResponse{Items: payouts, Count: len(payouts)})
}

// ListWebhooks handles GET /api/v1/admin/webhooks?processed=&limit=.
func (h *AdminHandler) ListWebhooks(c *gin.Context) {
	processed, err := dto.ParseOptionalBool("processed", c.Query("processed"))
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := dto.ParseLimit(c.Query("limit"))
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.reconciler.ListLogs(c.Request.Context(), processed, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WebhookLogListResponse{Items: entries, Count: len(entries)})
}

// ListDeadLetters handles GET /api/v1/admin/webhooks/dead-letters?limit=.
func (h *AdminHandler) ListDeadLetters(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Query("limit"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if limit == 0 {
		limit = defaultDeadLetterLimit
	}

	letters, err := h.dlq.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.DeadLetterListResponse{Items: letters, Count: len(letters)})
}
