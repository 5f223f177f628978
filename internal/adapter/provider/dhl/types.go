package dhl

import "github.com/shopspring/decimal"

// Wire types for the MyDHL Express API. Only the fields this service reads
// or writes are modelled.

type rateRequest struct {
	CustomerDetails            rateCustomerDetails `json:"customerDetails"`
	Accounts                   []account           `json:"accounts"`
	PlannedShippingDateAndTime string              `json:"plannedShippingDateAndTime"`
	UnitOfMeasurement          string              `json:"unitOfMeasurement"`
	IsCustomsDeclarable        bool                `json:"isCustomsDeclarable"`
	Packages                   []pkg               `json:"packages"`
}

type rateCustomerDetails struct {
	ShipperDetails  addressFragment `json:"shipperDetails"`
	ReceiverDetails addressFragment `json:"receiverDetails"`
}

type addressFragment struct {
	PostalCode  string `json:"postalCode,omitempty"`
	CityName    string `json:"cityName,omitempty"`
	CountryCode string `json:"countryCode"`
}

type account struct {
	TypeCode string `json:"typeCode"`
	Number   string `json:"number"`
}

type pkg struct {
	Weight     float64    `json:"weight"`
	Dimensions dimensions `json:"dimensions"`
}

type dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type rateResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName          string               `json:"productName"`
	ProductCode          string               `json:"productCode"`
	TotalPrice           []price              `json:"totalPrice"`
	DeliveryCapabilities deliveryCapabilities `json:"deliveryCapabilities"`
}

type price struct {
	CurrencyType  string          `json:"currencyType"`
	PriceCurrency string          `json:"priceCurrency"`
	Price         decimal.Decimal `json:"price"`
}

type deliveryCapabilities struct {
	EstimatedDeliveryDateAndTime string `json:"estimatedDeliveryDateAndTime,omitempty"`
	TotalTransitDays             string `json:"totalTransitDays,omitempty"`
}

// billingPrice returns the price in the billing currency, falling back to
// the first listed price.
func billingPrice(prices []price) (price, bool) {
	for _, p := range prices {
		if p.CurrencyType == "BILLC" {
			return p, true
		}
	}
	if len(prices) > 0 {
		return prices[0], true
	}
	return price{}, false
}

type shipmentRequest struct {
	PlannedShippingDateAndTime string                `json:"plannedShippingDateAndTime"`
	Pickup                     pickup                `json:"pickup"`
	ProductCode                string                `json:"productCode"`
	Accounts                   []account             `json:"accounts"`
	OutputImageProperties      outputImageProperties `json:"outputImageProperties"`
	CustomerDetails            shipmentCustomers     `json:"customerDetails"`
	Content                    content               `json:"content"`
	CustomerReferences         []customerReference   `json:"customerReferences"`
}

type pickup struct {
	IsRequested bool `json:"isRequested"`
}

type outputImageProperties struct {
	EncodingFormat string        `json:"encodingFormat"`
	ImageOptions   []imageOption `json:"imageOptions"`
}

type imageOption struct {
	TypeCode     string `json:"typeCode"`
	TemplateName string `json:"templateName,omitempty"`
}

type shipmentCustomers struct {
	ShipperDetails  party `json:"shipperDetails"`
	ReceiverDetails party `json:"receiverDetails"`
}

type party struct {
	PostalAddress      postalAddress      `json:"postalAddress"`
	ContactInformation contactInformation `json:"contactInformation"`
}

type postalAddress struct {
	PostalCode   string `json:"postalCode"`
	CityName     string `json:"cityName"`
	CountryCode  string `json:"countryCode"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
}

type contactInformation struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	FullName    string `json:"fullName"`
}

type content struct {
	Packages            []pkg  `json:"packages"`
	IsCustomsDeclarable bool   `json:"isCustomsDeclarable"`
	Description         string `json:"description"`
	Incoterm            string `json:"incoterm"`
	UnitOfMeasurement   string `json:"unitOfMeasurement"`
}

type customerReference struct {
	Value    string `json:"value"`
	TypeCode string `json:"typeCode"`
}

type shipmentResponse struct {
	ShipmentTrackingNumber string     `json:"shipmentTrackingNumber"`
	Documents              []document `json:"documents"`
	ShipmentCharges        []price    `json:"shipmentCharges"`
}

type document struct {
	ImageFormat string `json:"imageFormat"`
	Content     string `json:"content"` // base64
	TypeCode    string `json:"typeCode"`
}

type trackingResponse struct {
	Shipments []trackedShipment `json:"shipments"`
}

type trackedShipment struct {
	ShipmentTrackingNumber string  `json:"shipmentTrackingNumber"`
	Status                 string  `json:"status"`
	Events                 []event `json:"events"`
}

type event struct {
	Date        string        `json:"date"` // 2006-01-02
	Time        string        `json:"time"` // 15:04:05
	TypeCode    string        `json:"typeCode"`
	Description string        `json:"description"`
	ServiceArea []serviceArea `json:"serviceArea"`
}

type serviceArea struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
