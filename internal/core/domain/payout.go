package domain

import "time"

// PayoutRequest is a validated request to pay a beneficiary. Amount is in
// minor units.
type PayoutRequest struct {
	BeneficiaryName  string
	BeneficiaryEmail string
	IBAN             string
	BIC              string
	Amount           int64
	Currency         string
	Reference        string
}

// Payout is a transfer created through the business payout processor.
// ID is the processor's identifier.
type Payout struct {
	ID               string    `json:"id"`
	State            string    `json:"state"`
	BeneficiaryName  string    `json:"beneficiary_name,omitempty"`
	BeneficiaryEmail string    `json:"beneficiary_email,omitempty"`
	IBANEncrypted    string    `json:"-"`
	BIC              string    `json:"bic,omitempty"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Reference        string    `json:"reference"`
	CreatedAt        time.Time `json:"created_at"`
}
