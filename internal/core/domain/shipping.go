package domain

// Provider identifies one of the fixed external integrations.
type Provider string

const (
	ProviderDHL             Provider = "dhl"
	ProviderTTOM            Provider = "ttom"
	ProviderRevolutMerchant Provider = "revolut_merchant"
	ProviderRevolutBusiness Provider = "revolut_business"
)

// ShippingMode is the transport mode of a quote or shipment.
type ShippingMode string

const (
	ModeAir ShippingMode = "air"
	ModeSea ShippingMode = "sea"
)

// Address is the address fragment used for rate quotes.
type Address struct {
	CountryCode string `json:"countryCode" validate:"len=2,alpha"`
	PostalCode  string `json:"postalCode,omitempty" validate:"required_without=CityName"`
	CityName    string `json:"cityName,omitempty" validate:"required_without=PostalCode"`
}

// Package dimensions are in centimetres, weight in kilograms.
type Package struct {
	Weight float64 `json:"weight" validate:"gt=0"`
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

// VolumeCBM returns the package volume in cubic metres.
func (p Package) VolumeCBM() float64 {
	return p.Length * p.Width * p.Height / 1_000_000
}

// RateQuote is one normalized offer from a carrier. TotalPrice is in minor
// currency units.
type RateQuote struct {
	Provider          Provider     `json:"provider"`
	Mode              ShippingMode `json:"mode"`
	TotalPrice        int64        `json:"total_price"`
	Currency          string       `json:"currency"`
	EstimatedDelivery string       `json:"estimated_delivery"`
	ServiceName       string       `json:"service_name"`
}

// ShippingOptions holds the three labelled recommendations. A nil field
// means no quote was eligible and is rendered as JSON null.
type ShippingOptions struct {
	Cheapest *RateQuote `json:"cheapest"`
	Fastest  *RateQuote `json:"fastest"`
	Best     *RateQuote `json:"best"`
}

// ProviderFailure marks a provider whose quote request failed during rate shopping.
type ProviderFailure struct {
	Provider Provider `json:"provider"`
	Error    string   `json:"error"`
}

// RateShoppingResult is the aggregated answer to one quote request.
type RateShoppingResult struct {
	Options  ShippingOptions   `json:"options"`
	AllRates []RateQuote       `json:"all_rates"`
	Failures []ProviderFailure `json:"failures"`
}

// Contact is a full address block for bookings.
type Contact struct {
	Name         string `json:"name" validate:"required,max=100"`
	Company      string `json:"company,omitempty" validate:"max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=30"`
	AddressLine1 string `json:"addressLine1" validate:"required,max=100"`
	AddressLine2 string `json:"addressLine2,omitempty" validate:"max=100"`
	City         string `json:"cityName" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
	CountryCode  string `json:"countryCode" validate:"len=2,alpha"`
}

// LabelFormat is the document format requested for air shipment labels.
type LabelFormat string

const (
	LabelPDF LabelFormat = "PDF"
	LabelPNG LabelFormat = "PNG"
	LabelZPL LabelFormat = "ZPL"
)

// Valid reports whether f is one of the supported label formats.
func (f LabelFormat) Valid() bool {
	switch f {
	case LabelPDF, LabelPNG, LabelZPL:
		return true
	}
	return false
}

// ContentType returns the MIME type of the label document.
func (f LabelFormat) ContentType() string {
	switch f {
	case LabelPNG:
		return "image/png"
	case LabelZPL:
		return "application/x-zpl"
	}
	return "application/pdf"
}

// AirShipmentRequest books an express air shipment.
type AirShipmentRequest struct {
	Reference   string      `json:"reference" validate:"required,max=100"`
	Shipper     Contact     `json:"shipper"`
	Receiver    Contact     `json:"receiver"`
	Packages    []Package   `json:"packages" validate:"min=1,dive"`
	LabelFormat LabelFormat `json:"labelFormat" validate:"oneof=PDF PNG ZPL"`
}

// AirShipment is the carrier's confirmation of an air booking.
type AirShipment struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelURL       string `json:"labelUrl"`
	Cost           int64  `json:"cost"`
	Currency       string `json:"currency"`
}

// LineItem is one line of a sea freight order.
type LineItem struct {
	SKU      string  `json:"sku" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Weight   float64 `json:"weight" validate:"gt=0"` // per unit, kg
	Value    int64   `json:"value" validate:"gte=0"` // per unit, minor units
	HSCode   string  `json:"hsCode,omitempty" validate:"omitempty,numeric,min=6,max=10"`
}

// SeaOrder groups line items under one storefront order reference.
type SeaOrder struct {
	Reference string     `json:"reference" validate:"required"`
	Currency  string     `json:"currency" validate:"len=3,alpha"`
	Items     []LineItem `json:"items" validate:"min=1,dive"`
}

// SeaBookingRequest books LCL sea freight for one or more orders.
type SeaBookingRequest struct {
	Orders    []SeaOrder `json:"orders" validate:"min=1,dive"`
	Shipper   Contact    `json:"shipper"`
	Consignee Contact    `json:"consignee"`
}

// SeaBooking is the forwarder's booking confirmation.
type SeaBooking struct {
	BookingReference   string `json:"bookingReference"`
	ManifestURL        string `json:"manifestUrl"`
	PackingListURL     string `json:"packingListUrl"`
	EstimatedDeparture string `json:"estimatedDeparture"`
	EstimatedArrival   string `json:"estimatedArrival"`
}
