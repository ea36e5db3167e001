package kernel

import (
	"github.com/shopspring/decimal"
)

// Currency is the ISO 4217 code all amounts are expressed in.
const Currency = "NGN"

// Money is an amount in minor currency units (kobo). Arithmetic stays in
// integers; Decimal and String are for presentation only.
type Money int64

// Decimal returns the amount in major units (naira) as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount as "NGN 1800.00".
func (m Money) String() string {
	return Currency + " " + m.Decimal().StringFixed(2)
}

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// Max returns the larger of m and other.
func (m Money) Max(other Money) Money {
	if other > m {
		return other
	}
	return m
}
