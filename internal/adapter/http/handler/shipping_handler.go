package handler

import (
	"marketplace-integrations/internal/adapter/http/middleware"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/response"

	"github.com/gin-gonic/gin"
)

// ShippingHandler serves rate shopping, bookings and tracking.
type ShippingHandler struct {
	shippingSvc    ports.ShippingService
	fulfillmentSvc ports.FulfillmentService
}

func NewShippingHandler(shippingSvc ports.ShippingService, fulfillmentSvc ports.FulfillmentService) *ShippingHandler {
	return &ShippingHandler{shippingSvc: shippingSvc, fulfillmentSvc: fulfillmentSvc}
}

// Quotes handles POST /api/v1/shipping/quotes.
func (h *ShippingHandler) Quotes(c *gin.Context) {
	var req ports.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.shippingSvc.QuoteRates(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// BookAir handles POST /api/v1/shipping/air/bookings.
func (h *ShippingHandler) BookAir(c *gin.Context) {
	var req domain.AirShipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	shipment, err := h.fulfillmentSvc.BookAir(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, shipment.TrackingNumber)
	response.Created(c, shipment)
}

// BookSea handles POST /api/v1/shipping/sea/bookings.
func (h *ShippingHandler) BookSea(c *gin.Context) {
	var req domain.SeaBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.fulfillmentSvc.BookSea(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, booking.BookingReference)
	response.Created(c, booking)
}

// Track handles GET /api/v1/shipping/tracking/:tracking_number?provider=.
func (h *ShippingHandler) Track(c *gin.Context) {
	result, err := h.fulfillmentSvc.Track(
		c.Request.Context(),
		c.Param("tracking_number"),
		domain.Provider(c.Query("provider")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
