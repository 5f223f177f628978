// Package ttom adapts the TTOM LCL sea freight forwarder to the sea
// forwarder port.
package ttom

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"marketplace-integrations/config"
	"marketplace-integrations/internal/adapter/provider"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	liveBaseURL    = "https://api.ttom.eu/v1"
	sandboxBaseURL = "https://sandbox.api.ttom.eu/v1"

	serviceLCL = "LCL"

	pathBookings        = "/bookings"
	pathBookingRequests = "/booking-requests"
)

var _ ports.SeaForwarder = (*Adapter)(nil)

// Adapter is the TTOM sea freight forwarder.
type Adapter struct {
	cfg       config.TTOMConfig
	transport provider.Transport
	docs      ports.DocumentStore
	log       zerolog.Logger
	now       func() time.Time
}

// New builds the adapter. The contact email alone enables live mode; bookings
// then go out as requests the forwarder confirms by email. The API key adds
// automated booking.
func New(cfg config.TTOMConfig, timeout time.Duration, docs ports.DocumentStore, log zerolog.Logger) *Adapter {
	a := &Adapter{
		cfg:  cfg,
		docs: docs,
		log:  log.With().Str("provider", string(domain.ProviderTTOM)).Logger(),
		now:  time.Now,
	}
	a.transport = provider.Select(domain.ProviderTTOM, cfg.IsConfigured(), func() *provider.HTTPTransport {
		sandbox := provider.IsSandboxCredential(cfg.APIKey, "test_", "sandbox_")
		base := provider.BaseURL(cfg.BaseURL, liveBaseURL, sandboxBaseURL, sandbox)
		return provider.NewHTTPTransport(domain.ProviderTTOM, base, timeout, a.authorize)
	}, a.simulate, a.log)
	if cfg.IsConfigured() && !cfg.Automated() {
		a.log.Info().Msg("no API key, sea bookings are sent as contact-email requests")
	}
	return a
}

func (a *Adapter) authorize(_ context.Context, req *http.Request) error {
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}
	req.Header.Set("X-Contact-Email", a.cfg.ContactEmail)
	return nil
}

func (a *Adapter) Name() domain.Provider { return domain.ProviderTTOM }
func (a *Adapter) Mode() domain.ShippingMode { return domain.ModeSea }

func (a *Adapter) IsConfigured() bool {
	return a.cfg.IsConfigured()
}

// QuoteRates requests LCL quotes for the consolidated cargo volume.
// Non-finite weights and volumes count as zero.
func (a *Adapter) QuoteRates(ctx context.Context, origin, destination domain.Address, packages []domain.Package) ([]domain.RateQuote, error) {
	body := quoteRequest{
		Service:     serviceLCL,
		Origin:      toLocation(origin),
		Destination: toLocation(destination),
		Cargo:       cargoOf(packages),
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: "/quotes", Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderTTOM, resp)
	}

	var out quoteResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderTTOM, err)
	}

	quotes := make([]domain.RateQuote, 0, len(out.Quotes))
	for _, q := range out.Quotes {
		quotes = append(quotes, domain.RateQuote{
			Provider:          domain.ProviderTTOM,
			Mode:              domain.ModeSea,
			TotalPrice:        provider.ToMinor(q.Total),
			Currency:          q.Currency,
			EstimatedDelivery: transitRange(q.TransitDaysMin, q.TransitDaysMax),
			ServiceName:       q.Service,
		})
	}
	return quotes, nil
}

// Book generates the manifest and packing list, stores them, and books the
// consolidated cargo with the forwarder. Without an API key the booking is
// posted as a request and its reference stays provisional until the
// forwarder confirms it by email.
func (a *Adapter) Book(ctx context.Context, req domain.SeaBookingRequest) (*domain.SeaBooking, error) {
	manifest, err := buildManifest(req)
	if err != nil {
		return nil, err
	}
	packingList, err := buildPackingList(req)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("sea/%s/%s", a.now().UTC().Format("20060102"), uuid.New())
	manifestURL, err := a.docs.Put(ctx, prefix+"/manifest.csv", "text/csv", manifest)
	if err != nil {
		return nil, fmt.Errorf("storing manifest: %w", err)
	}
	packingListURL, err := a.docs.Put(ctx, prefix+"/packing-list.csv", "text/csv", packingList)
	if err != nil {
		return nil, fmt.Errorf("storing packing list: %w", err)
	}

	body := bookingRequest{
		Service:      serviceLCL,
		ContactEmail: a.cfg.ContactEmail,
		Shipper:      toContact(req.Shipper),
		Consignee:    toContact(req.Consignee),
		Orders:       toOrders(req.Orders),
		Cargo:        cargoOfOrders(req.Orders),
		Documents:    bookingDocuments{ManifestURL: manifestURL, PackingListURL: packingListURL},
	}

	path := pathBookings
	if !a.cfg.Automated() && a.cfg.IsConfigured() {
		path = pathBookingRequests
	}
	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderTTOM, resp)
	}

	var out bookingResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderTTOM, err)
	}
	if out.BookingReference == "" {
		return nil, provider.DecodeError(domain.ProviderTTOM, fmt.Errorf("response carries no booking reference"))
	}

	return &domain.SeaBooking{
		BookingReference:   out.BookingReference,
		ManifestURL:        manifestURL,
		PackingListURL:     packingListURL,
		EstimatedDeparture: out.ETD,
		EstimatedArrival:   out.ETA,
	}, nil
}

// Track returns the booking's milestones, earliest first.
func (a *Adapter) Track(ctx context.Context, bookingReference string) (*domain.TrackingInfo, error) {
	resp, err := a.transport.Do(ctx, provider.Request{
		Method: http.MethodGet,
		Path:   "/bookings/" + url.PathEscape(bookingReference) + "/tracking",
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.TrackingError(domain.ProviderTTOM, resp)
	}

	var out trackingResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderTTOM, err)
	}
	if out.BookingReference == "" && len(out.Milestones) == 0 {
		return nil, apperror.ErrNotFound("Tracking number")
	}
	return toTrackingInfo(out), nil
}

// Probe quotes the canonical low-weight parcel.
func (a *Adapter) Probe(ctx context.Context) error {
	_, err := a.QuoteRates(ctx,
		domain.Address{CountryCode: "DE", PostalCode: "20457", CityName: "Hamburg"},
		domain.Address{CountryCode: "DE", PostalCode: "10115", CityName: "Berlin"},
		[]domain.Package{{Weight: 0.5, Length: 10, Width: 10, Height: 10}},
	)
	return err
}

func toLocation(a domain.Address) location {
	return location{CountryCode: strings.ToUpper(a.CountryCode), PostalCode: a.PostalCode, City: a.CityName}
}

func cargoOf(packages []domain.Package) cargo {
	var c cargo
	for _, p := range packages {
		c.VolumeCBM += provider.Finite(p.VolumeCBM())
		c.WeightKg += provider.Finite(p.Weight)
	}
	c.VolumeCBM = math.Round(c.VolumeCBM*1000) / 1000
	c.Pieces = len(packages)
	return c
}

func cargoOfOrders(orders []domain.SeaOrder) cargo {
	var c cargo
	for _, o := range orders {
		for _, it := range o.Items {
			c.WeightKg += provider.Finite(it.Weight) * float64(it.Quantity)
			c.Pieces += it.Quantity
		}
	}
	return c
}

func toContact(c domain.Contact) contact {
	return contact{
		Name:        c.Name,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Street:      c.AddressLine1,
		Street2:     c.AddressLine2,
		City:        c.City,
		PostalCode:  c.PostalCode,
		CountryCode: strings.ToUpper(c.CountryCode),
	}
}

func toOrders(orders []domain.SeaOrder) []bookingOrder {
	out := make([]bookingOrder, len(orders))
	for i, o := range orders {
		lines := make([]bookingLine, len(o.Items))
		for j, it := range o.Items {
			lines[j] = bookingLine{
				SKU:       it.SKU,
				Quantity:  it.Quantity,
				WeightKg:  provider.Finite(it.Weight),
				UnitValue: provider.FromMinor(it.Value),
				HSCode:    it.HSCode,
			}
		}
		out[i] = bookingOrder{Reference: o.Reference, Currency: o.Currency, Lines: lines}
	}
	return out
}

func transitRange(lo, hi int) string {
	switch {
	case lo > 0 && hi > lo:
		return fmt.Sprintf("%d-%d days", lo, hi)
	case lo > 0:
		return fmt.Sprintf("%d days", lo)
	case hi > 0:
		return fmt.Sprintf("up to %d days", hi)
	}
	return ""
}

func toTrackingInfo(t trackingResponse) *domain.TrackingInfo {
	events := make([]domain.TrackingEvent, 0, len(t.Milestones))
	for _, m := range t.Milestones {
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			continue
		}
		events = append(events, domain.TrackingEvent{
			Status:      milestoneStatus(m.Code),
			Description: m.Description,
			Location:    m.Location,
			Timestamp:   ts,
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

	info := &domain.TrackingInfo{Status: milestoneStatus(t.Status), Events: events}
	if n := len(events); n > 0 {
		info.Location = events[n-1].Location
		info.Timestamp = events[n-1].Timestamp
		if info.Status == domain.ShipmentStatusUnknown {
			info.Status = events[n-1].Status
		}
	}
	return info
}

func milestoneStatus(code string) domain.ShipmentStatus {
	switch strings.ToUpper(code) {
	case "BOOKED", "CONFIRMED":
		return domain.ShipmentStatusBooked
	case "RECEIVED", "LOADED", "SAILING", "TRANSSHIPMENT", "ARRIVED", "CUSTOMS":
		return domain.ShipmentStatusInTransit
	case "DELIVERED":
		return domain.ShipmentStatusDelivered
	case "HOLD", "EXCEPTION":
		return domain.ShipmentStatusException
	}
	return domain.ShipmentStatusUnknown
}
