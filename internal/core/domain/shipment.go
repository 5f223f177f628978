package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus is the normalized carrier status of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusBooked    ShipmentStatus = "booked"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusException ShipmentStatus = "exception"
	ShipmentStatusUnknown   ShipmentStatus = "unknown"
)

// Shipment is a confirmed booking with an air carrier or sea forwarder.
// The order it ships belongs to the storefront and is referenced by its
// human-readable reference.
type Shipment struct {
	ID             uuid.UUID      `json:"id"`
	OrderReference string         `json:"order_reference"`
	Provider       Provider       `json:"provider"`
	Mode           ShippingMode   `json:"mode"`
	TrackingNumber string         `json:"tracking_number"`
	DocumentURL    string         `json:"document_url"` // label (air) or manifest (sea)
	Cost           int64          `json:"cost"`
	Currency       string         `json:"currency"`
	Status         ShipmentStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TrackingEvent is one checkpoint in a carrier's tracking history.
type TrackingEvent struct {
	Status      ShipmentStatus `json:"status"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Timestamp   time.Time      `json:"timestamp"`
}

// TrackingInfo is the current tracking state. Events are ordered from
// earliest to latest.
type TrackingInfo struct {
	Status    ShipmentStatus  `json:"status"`
	Location  string          `json:"location"`
	Timestamp time.Time       `json:"timestamp"`
	Events    []TrackingEvent `json:"events"`
}

// TrackingResult pairs tracking state with the provider that answered.
type TrackingResult struct {
	Provider Provider      `json:"provider"`
	Tracking *TrackingInfo `json:"tracking"`
}
