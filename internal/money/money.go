// Package money converts between minor-unit (pennies) and major-unit
// (dollars) amounts and formats them for display.
//
// The remote API speaks pennies in some places and dollars in others; the
// dashboard always shows dollars truncated, never rounded, to two places.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)

	// MaterialityThreshold is the smallest balance treated as non-zero.
	MaterialityThreshold = decimal.New(1, -2)
)

// TruncateToTwoDecimals returns floor(x*100)/100.
//
// Flooring moves negative values further from zero (-16.236 becomes -16.24).
func TruncateToTwoDecimals(x decimal.Decimal) decimal.Decimal {
	return x.Shift(2).Floor().Shift(-2)
}

// PenniesToDollars rounds to a whole penny first, then divides by 100.
func PenniesToDollars(pennies decimal.Decimal) decimal.Decimal {
	return roundHalfUp(pennies).Shift(-2)
}

// DollarsToPennies returns the nearest whole number of pennies.
func DollarsToPennies(dollars decimal.Decimal) int64 {
	return roundHalfUp(dollars.Mul(hundred)).IntPart()
}

// IsMaterial reports whether x reaches the materiality threshold.
func IsMaterial(x decimal.Decimal) bool {
	return x.GreaterThanOrEqual(MaterialityThreshold)
}

// roundHalfUp rounds halves toward positive infinity (-2.5 becomes -2).
func roundHalfUp(x decimal.Decimal) decimal.Decimal {
	return x.Add(half).Floor()
}
