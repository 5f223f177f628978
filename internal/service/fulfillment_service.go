package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FulfillmentServiceImpl implements ports.FulfillmentService.
type FulfillmentServiceImpl struct {
	air       ports.AirCarrier
	sea       ports.SeaForwarder
	trackers  map[domain.Provider]ports.Tracker
	shipments ports.ShipmentRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewFulfillmentService books and tracks shipments with the air carrier and
// the sea forwarder. Tracking routes by provider name.
func NewFulfillmentService(air ports.AirCarrier, sea ports.SeaForwarder, shipments ports.ShipmentRepository, log zerolog.Logger) *FulfillmentServiceImpl {
	return &FulfillmentServiceImpl{
		air:       air,
		sea:       sea,
		trackers:  map[domain.Provider]ports.Tracker{air.Name(): air, sea.Name(): sea},
		shipments: shipments,
		log:       log.With().Str("component", "fulfillment").Logger(),
		now:       time.Now,
	}
}

// BookAir books an express shipment and records it. The label format
// defaults to PDF.
func (s *FulfillmentServiceImpl) BookAir(ctx context.Context, req domain.AirShipmentRequest) (*domain.AirShipment, error) {
	if req.LabelFormat == "" {
		req.LabelFormat = domain.LabelPDF
	}
	req.LabelFormat = domain.LabelFormat(strings.ToUpper(string(req.LabelFormat)))
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	shipment, err := s.air.CreateShipment(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("reference", req.Reference).Msg("air booking failed")
		return nil, bookingError(err)
	}

	s.record(ctx, &domain.Shipment{
		OrderReference: req.Reference,
		Provider:       s.air.Name(),
		Mode:           domain.ModeAir,
		TrackingNumber: shipment.TrackingNumber,
		DocumentURL:    shipment.LabelURL,
		Cost:           shipment.Cost,
		Currency:       shipment.Currency,
	})
	return shipment, nil
}

// BookSea books LCL freight for the given orders. One shipment row is
// recorded per order, all sharing the booking reference.
func (s *FulfillmentServiceImpl) BookSea(ctx context.Context, req domain.SeaBookingRequest) (*domain.SeaBooking, error) {
	for i := range req.Orders {
		req.Orders[i].Currency = normalizeCurrency(req.Orders[i].Currency)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	booking, err := s.sea.Book(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Int("orders", len(req.Orders)).Msg("sea booking failed")
		return nil, bookingError(err)
	}

	for _, o := range req.Orders {
		s.record(ctx, &domain.Shipment{
			OrderReference: o.Reference,
			Provider:       s.sea.Name(),
			Mode:           domain.ModeSea,
			TrackingNumber: booking.BookingReference,
			DocumentURL:    booking.ManifestURL,
			Currency:       o.Currency,
		})
	}
	return booking, nil
}

// record persists a booked shipment. The provider booking already exists,
// so a storage failure is logged for reconciliation instead of failing the
// request and inviting a duplicate booking.
func (s *FulfillmentServiceImpl) record(ctx context.Context, shipment *domain.Shipment) {
	now := s.now().UTC()
	shipment.ID = uuid.New()
	shipment.Status = domain.ShipmentStatusBooked
	shipment.CreatedAt = now
	shipment.UpdatedAt = now

	if err := s.shipments.Create(ctx, shipment); err != nil {
		s.log.Error().Err(err).
			Str("provider", string(shipment.Provider)).
			Str("tracking_number", shipment.TrackingNumber).
			Str("order_reference", shipment.OrderReference).
			Msg("shipment booked but not persisted")
	}
}

// Track fetches tracking from provider, or from the provider of the stored
// shipment when provider is empty.
func (s *FulfillmentServiceImpl) Track(ctx context.Context, trackingNumber string, provider domain.Provider) (*domain.TrackingResult, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, apperror.ValidationFields(map[string]string{"tracking_number": "is required"})
	}

	var shipment *domain.Shipment
	if provider == "" {
		found, err := s.shipments.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup shipment: %w", err))
		}
		if found == nil {
			return nil, apperror.ErrNotFound("Shipment")
		}
		shipment, provider = found, found.Provider
	}

	tracker, ok := s.trackers[provider]
	if !ok {
		return nil, apperror.ValidationFields(map[string]string{"provider": "must be one of: dhl, ttom"})
	}

	info, err := tracker.Track(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	s.refreshStatus(ctx, shipment, trackingNumber, info.Status)
	return &domain.TrackingResult{Provider: provider, Tracking: info}, nil
}

// refreshStatus stores the latest known status. Failures only log.
func (s *FulfillmentServiceImpl) refreshStatus(ctx context.Context, shipment *domain.Shipment, trackingNumber string, status domain.ShipmentStatus) {
	if status == "" || status == domain.ShipmentStatusUnknown {
		return
	}
	if shipment == nil {
		found, err := s.shipments.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			s.log.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("shipment lookup for status refresh failed")
			return
		}
		if found == nil {
			return
		}
		shipment = found
	}
	if shipment.Status == status {
		return
	}
	if err := s.shipments.UpdateStatus(ctx, shipment.ID, status); err != nil {
		s.log.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("shipment status refresh failed")
	}
}

// bookingError hides provider detail behind the generic retry message and
// passes validation and not-found errors through.
func bookingError(err error) error {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindNotFound:
		return err
	}
	return apperror.ErrRetryable(err)
}
