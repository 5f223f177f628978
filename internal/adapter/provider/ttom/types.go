package ttom

import "github.com/shopspring/decimal"

// Wire types for the TTOM forwarding API.

type location struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
}

type cargo struct {
	VolumeCBM float64 `json:"volumeCbm,omitempty"`
	WeightKg  float64 `json:"weightKg"`
	Pieces    int     `json:"pieces"`
}

type quoteRequest struct {
	Service     string   `json:"service"`
	Origin      location `json:"origin"`
	Destination location `json:"destination"`
	Cargo       cargo    `json:"cargo"`
}

type quoteResponse struct {
	Quotes []quote `json:"quotes"`
}

type quote struct {
	QuoteID        string          `json:"quoteId"`
	Service        string          `json:"service"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
	TransitDaysMin int             `json:"transitDaysMin"`
	TransitDaysMax int             `json:"transitDaysMax"`
}

type contact struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Street      string `json:"street"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

type bookingLine struct {
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	WeightKg  float64         `json:"weightKg"`
	UnitValue decimal.Decimal `json:"unitValue"`
	HSCode    string          `json:"hsCode,omitempty"`
}

type bookingOrder struct {
	Reference string        `json:"reference"`
	Currency  string        `json:"currency"`
	Lines     []bookingLine `json:"lines"`
}

type bookingDocuments struct {
	ManifestURL    string `json:"manifestUrl"`
	PackingListURL string `json:"packingListUrl"`
}

type bookingRequest struct {
	Service      string           `json:"service"`
	ContactEmail string           `json:"contactEmail"`
	Shipper      contact          `json:"shipper"`
	Consignee    contact          `json:"consignee"`
	Orders       []bookingOrder   `json:"orders"`
	Cargo        cargo            `json:"cargo"`
	Documents    bookingDocuments `json:"documents"`
}

type bookingResponse struct {
	BookingReference string `json:"bookingReference"`
	Status           string `json:"status"`
	ETD              string `json:"etd"`
	ETA              string `json:"eta"`
}

type trackingResponse struct {
	BookingReference string      `json:"bookingReference"`
	Status           string      `json:"status"`
	Milestones       []milestone `json:"milestones"`
}

type milestone struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Timestamp   string `json:"timestamp"` // RFC 3339
}
