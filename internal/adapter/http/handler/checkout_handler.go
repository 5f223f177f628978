package handler

import (
	"net/http"

	"marketplace-integrations/internal/adapter/http/dto"
	"marketplace-integrations/internal/adapter/http/middleware"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler opens hosted checkouts and serves the simulated page.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// CreateCheckout handles POST /api/v1/checkout.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var in ports.CheckoutInput
	if !bindJSON(c, &in) {
		return
	}

	session, err := h.checkoutSvc.CreateCheckout(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, session.PublicID)
	response.Created(c, dto.NewCheckoutResponse(session))
}

// DemoRedirect handles GET /demo/checkout/:public_id by sending the buyer
// straight to the success URL of a simulated session.
func (h *CheckoutHandler) DemoRedirect(c *gin.Context) {
	target, err := h.checkoutSvc.DemoRedirect(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}
