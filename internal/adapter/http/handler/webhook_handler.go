package handler

import (
	"io"
	"net/http"

	"marketplace-integrations/internal/adapter/http/dto"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HeaderRevolutSignature = "Revolut-Signature"
	HeaderSignature        = "X-Signature"
)

// WebhookHandler receives merchant processor webhooks.
type WebhookHandler struct {
	reconciler ports.WebhookReconciler
}

func NewWebhookHandler(reconciler ports.WebhookReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// Revolut handles POST /api/v1/webhooks/revolut. The signature covers the
// raw body, so it is read before any decoding.
func (h *WebhookHandler) Revolut(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("Unreadable request body"))
		return
	}

	signature := c.GetHeader(HeaderRevolutSignature)
	if signature == "" {
		signature = c.GetHeader(HeaderSignature)
	}

	if err := h.reconciler.Handle(c.Request.Context(), signature, payload); err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, dto.WebhookAck{Received: true})
}
