package provider

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ToMinor converts a decimal major-unit amount into minor units, rounding
// half away from zero.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// ParseMinor parses a provider decimal string into minor units.
func ParseMinor(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return ToMinor(d), nil
}

// FromMinor renders minor units as a major-unit decimal.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
