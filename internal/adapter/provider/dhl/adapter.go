// Package dhl adapts the MyDHL Express API to the air carrier port.
package dhl

import (
	"context"
	"encoding/base64"
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

	"github.com/rs/zerolog"
)

const (
	liveBaseURL    = "https://express.api.dhl.com/mydhlapi"
	sandboxBaseURL = "https://express.api.dhl.com/mydhlapi/test"

	dateTimeLayout = "2006-01-02T15:04:05 GMT-07:00"
)

var _ ports.AirCarrier = (*Adapter)(nil)

// Adapter is the DHL Express air carrier.
type Adapter struct {
	cfg       config.DHLConfig
	transport provider.Transport
	docs      ports.DocumentStore
	log       zerolog.Logger
	now       func() time.Time
}

// New builds the adapter. Without complete credentials every call is
// answered by the simulator.
func New(cfg config.DHLConfig, timeout time.Duration, docs ports.DocumentStore, log zerolog.Logger) *Adapter {
	a := &Adapter{
		cfg:  cfg,
		docs: docs,
		log:  log.With().Str("provider", string(domain.ProviderDHL)).Logger(),
		now:  time.Now,
	}
	a.transport = provider.Select(domain.ProviderDHL, cfg.IsConfigured(), func() *provider.HTTPTransport {
		sandbox := provider.IsSandboxCredential(cfg.ClientID, "test", "sandbox")
		base := provider.BaseURL(cfg.BaseURL, liveBaseURL, sandboxBaseURL, sandbox)
		return provider.NewHTTPTransport(domain.ProviderDHL, base, timeout, a.authorize)
	}, a.simulate, a.log)
	return a
}

func (a *Adapter) authorize(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(a.cfg.ClientID, a.cfg.ClientSecret)
	return nil
}

func (a *Adapter) Name() domain.Provider { return domain.ProviderDHL }
func (a *Adapter) Mode() domain.ShippingMode { return domain.ModeAir }

// IsConfigured reports whether every DHL credential is present.
func (a *Adapter) IsConfigured() bool {
	return a.cfg.IsConfigured()
}

// QuoteRates asks DHL for express products between two address fragments.
// Non-finite weights and dimensions are sent as zero.
func (a *Adapter) QuoteRates(ctx context.Context, origin, destination domain.Address, packages []domain.Package) ([]domain.RateQuote, error) {
	body := rateRequest{
		CustomerDetails: rateCustomerDetails{
			ShipperDetails:  fragment(origin),
			ReceiverDetails: fragment(destination),
		},
		Accounts:                   []account{{TypeCode: "shipper", Number: a.cfg.AccountNumber}},
		PlannedShippingDateAndTime: a.now().UTC().Add(24 * time.Hour).Format(dateTimeLayout),
		UnitOfMeasurement:          "metric",
		IsCustomsDeclarable:        !strings.EqualFold(origin.CountryCode, destination.CountryCode),
		Packages:                   toPackages(packages),
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: "/rates", Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderDHL, resp)
	}

	var out rateResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderDHL, err)
	}

	quotes := make([]domain.RateQuote, 0, len(out.Products))
	for _, p := range out.Products {
		pr, ok := billingPrice(p.TotalPrice)
		if !ok {
			continue
		}
		quotes = append(quotes, domain.RateQuote{
			Provider:          domain.ProviderDHL,
			Mode:              domain.ModeAir,
			TotalPrice:        provider.ToMinor(pr.Price),
			Currency:          pr.PriceCurrency,
			EstimatedDelivery: estimatedDelivery(p.DeliveryCapabilities),
			ServiceName:       p.ProductName,
		})
	}
	return quotes, nil
}

// CreateShipment books a shipment and stores the returned label.
func (a *Adapter) CreateShipment(ctx context.Context, req domain.AirShipmentRequest) (*domain.AirShipment, error) {
	format := req.LabelFormat
	if format == "" {
		format = domain.LabelPDF
	}

	body := shipmentRequest{
		PlannedShippingDateAndTime: a.now().UTC().Add(time.Hour).Format(dateTimeLayout),
		Pickup:                     pickup{IsRequested: false},
		ProductCode:                "P",
		Accounts:                   []account{{TypeCode: "shipper", Number: a.cfg.AccountNumber}},
		OutputImageProperties: outputImageProperties{
			EncodingFormat: strings.ToLower(string(format)),
			ImageOptions:   []imageOption{{TypeCode: "label"}},
		},
		CustomerDetails: shipmentCustomers{
			ShipperDetails:  toParty(req.Shipper),
			ReceiverDetails: toParty(req.Receiver),
		},
		Content: content{
			Packages:            toPackages(req.Packages),
			IsCustomsDeclarable: !strings.EqualFold(req.Shipper.CountryCode, req.Receiver.CountryCode),
			Description:         "Marketplace order " + req.Reference,
			Incoterm:            "DAP",
			UnitOfMeasurement:   "metric",
		},
		CustomerReferences: []customerReference{{Value: req.Reference, TypeCode: "CU"}},
	}

	resp, err := a.transport.Do(ctx, provider.Request{Method: http.MethodPost, Path: "/shipments", Body: body})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.StatusError(domain.ProviderDHL, resp)
	}

	var out shipmentResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderDHL, err)
	}
	if out.ShipmentTrackingNumber == "" {
		return nil, provider.DecodeError(domain.ProviderDHL, fmt.Errorf("response carries no tracking number"))
	}

	shipment := &domain.AirShipment{TrackingNumber: out.ShipmentTrackingNumber}
	if pr, ok := billingPrice(out.ShipmentCharges); ok {
		shipment.Cost = provider.ToMinor(pr.Price)
		shipment.Currency = pr.PriceCurrency
	}

	labelURL, err := a.storeLabel(ctx, out.ShipmentTrackingNumber, format, out.Documents)
	if err != nil {
		return nil, err
	}
	shipment.LabelURL = labelURL
	return shipment, nil
}

func (a *Adapter) storeLabel(ctx context.Context, trackingNumber string, format domain.LabelFormat, docs []document) (string, error) {
	for _, d := range docs {
		if d.TypeCode != "label" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(d.Content)
		if err != nil {
			return "", provider.DecodeError(domain.ProviderDHL, fmt.Errorf("decoding label: %w", err))
		}
		key := fmt.Sprintf("labels/dhl/%s.%s", trackingNumber, strings.ToLower(string(format)))
		labelURL, err := a.docs.Put(ctx, key, format.ContentType(), raw)
		if err != nil {
			return "", fmt.Errorf("storing label: %w", err)
		}
		return labelURL, nil
	}
	a.log.Warn().Str("tracking_number", trackingNumber).Msg("shipment created without a label document")
	return "", nil
}

// Track returns the shipment's checkpoints, earliest first.
func (a *Adapter) Track(ctx context.Context, trackingNumber string) (*domain.TrackingInfo, error) {
	resp, err := a.transport.Do(ctx, provider.Request{
		Method: http.MethodGet,
		Path:   "/shipments/" + url.PathEscape(trackingNumber) + "/tracking",
		Query:  url.Values{"trackingView": {"all-checkpoints"}},
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, provider.TrackingError(domain.ProviderDHL, resp)
	}

	var out trackingResponse
	if err := resp.Decode(&out); err != nil {
		return nil, provider.DecodeError(domain.ProviderDHL, err)
	}
	if len(out.Shipments) == 0 {
		return nil, apperror.ErrNotFound("Tracking number")
	}
	return toTrackingInfo(out.Shipments[0]), nil
}

// Probe quotes the canonical low-weight domestic parcel.
func (a *Adapter) Probe(ctx context.Context) error {
	_, err := a.QuoteRates(ctx,
		domain.Address{CountryCode: "DE", PostalCode: "53113", CityName: "Bonn"},
		domain.Address{CountryCode: "DE", PostalCode: "10115", CityName: "Berlin"},
		[]domain.Package{{Weight: 0.5, Length: 10, Width: 10, Height: 10}},
	)
	return err
}

func fragment(a domain.Address) addressFragment {
	return addressFragment{
		PostalCode:  a.PostalCode,
		CityName:    a.CityName,
		CountryCode: strings.ToUpper(a.CountryCode),
	}
}

func toPackages(in []domain.Package) []pkg {
	out := make([]pkg, len(in))
	for i, p := range in {
		out[i] = pkg{
			Weight: provider.Finite(p.Weight),
			Dimensions: dimensions{
				Length: math.Ceil(provider.Finite(p.Length)),
				Width:  math.Ceil(provider.Finite(p.Width)),
				Height: math.Ceil(provider.Finite(p.Height)),
			},
		}
	}
	return out
}

func toParty(c domain.Contact) party {
	company := c.Company
	if company == "" {
		company = c.Name
	}
	return party{
		PostalAddress: postalAddress{
			PostalCode:   c.PostalCode,
			CityName:     c.City,
			CountryCode:  strings.ToUpper(c.CountryCode),
			AddressLine1: c.AddressLine1,
			AddressLine2: c.AddressLine2,
		},
		ContactInformation: contactInformation{
			Email:       c.Email,
			Phone:       c.Phone,
			CompanyName: company,
			FullName:    c.Name,
		},
	}
}

func estimatedDelivery(d deliveryCapabilities) string {
	switch {
	case d.TotalTransitDays == "1":
		return "1 business day"
	case d.TotalTransitDays != "":
		return d.TotalTransitDays + " business days"
	case d.EstimatedDeliveryDateAndTime != "":
		return "by " + d.EstimatedDeliveryDateAndTime
	}
	return ""
}

func toTrackingInfo(s trackedShipment) *domain.TrackingInfo {
	events := make([]domain.TrackingEvent, 0, len(s.Events))
	for _, e := range s.Events {
		ts, err := time.Parse("2006-01-02 15:04:05", e.Date+" "+e.Time)
		if err != nil {
			continue
		}
		var location string
		if len(e.ServiceArea) > 0 {
			location = e.ServiceArea[0].Description
		}
		events = append(events, domain.TrackingEvent{
			Status:      eventStatus(e.TypeCode),
			Description: e.Description,
			Location:    location,
			Timestamp:   ts,
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

	info := &domain.TrackingInfo{Status: domain.ShipmentStatusBooked, Events: events}
	if n := len(events); n > 0 {
		last := events[n-1]
		info.Status = last.Status
		info.Location = last.Location
		info.Timestamp = last.Timestamp
	}
	return info
}

// eventStatus maps DHL checkpoint codes onto the normalized status set.
func eventStatus(code string) domain.ShipmentStatus {
	switch code {
	case "OK":
		return domain.ShipmentStatusDelivered
	case "PU", "PL", "DF", "AF", "AR", "WC", "CC", "TR", "RW":
		return domain.ShipmentStatusInTransit
	case "OH", "CA", "MS", "HP", "NH", "BA", "CR":
		return domain.ShipmentStatusException
	case "SA":
		return domain.ShipmentStatusBooked
	}
	return domain.ShipmentStatusUnknown
}
