package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStatus is the lifecycle state of a hosted checkout session.
type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
	CheckoutStatusFailed    CheckoutStatus = "failed"
)

// Customer identifies the payer.
type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// CheckoutRequest is a validated request to open a hosted checkout.
// Amount is in minor units.
type CheckoutRequest struct {
	Amount      int64
	Currency    string
	Customer    Customer
	Reference   string
	SuccessURL  string
	CancelURL   string
	Description string
}

// CheckoutSession is a hosted payment page created by the merchant processor.
// Its status only changes in response to verified webhook events.
type CheckoutSession struct {
	ID            string         `json:"id"`
	PublicID      string         `json:"public_id"`
	CheckoutURL   string         `json:"checkout_url"`
	Status        CheckoutStatus `json:"status"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	CustomerEmail string         `json:"customer_email"`
	Reference     string         `json:"reference"`
	SuccessURL    string         `json:"-"`
	Simulated     bool           `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
}

// OrderStatus is owned by the storefront; only the paid transition is
// written here.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Order is the storefront order referenced by checkout and shipping.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	Reference string      `json:"reference"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// PaidTransition describes what a payment confirmation does to an order.
type PaidTransition int

const (
	// PaidApply moves a pending order to paid.
	PaidApply PaidTransition = iota
	// PaidNoop means the order is already paid.
	PaidNoop
	// PaidSkip means the order has progressed past paid and must not regress.
	PaidSkip
)

// PaidTransition reports how a payment confirmation applies to o.
func (o *Order) PaidTransition() PaidTransition {
	switch o.Status {
	case OrderStatusPending:
		return PaidApply
	case OrderStatusPaid:
		return PaidNoop
	default:
		return PaidSkip
	}
}
