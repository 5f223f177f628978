package merchant

import "time"

// Wire types for the Revolut Merchant API (v1.0). Amounts are minor units.

type orderRequest struct {
	Amount              int64  `json:"amount"`
	Currency            string `json:"currency"`
	MerchantOrderExtRef string `json:"merchant_order_ext_ref"`
	CustomerEmail       string `json:"customer_email,omitempty"`
	Description         string `json:"description,omitempty"`
	RedirectURL         string `json:"redirect_url,omitempty"`
	CancelURL           string `json:"cancel_url,omitempty"`
}

type order struct {
	ID          string    `json:"id"`
	PublicID    string    `json:"public_id"`
	State       string    `json:"state"`
	CheckoutURL string    `json:"checkout_url"`
	CreatedAt   time.Time `json:"created_at"`
}
