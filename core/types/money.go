// Package types - shared domain types for the pricing engine
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Cents rounds a money amount to whole cents.
// All persisted and reported amounts pass through here so that totals
// are reproducible regardless of summation order.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Dollars builds a decimal from a float configuration value
func Dollars(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Zero is the zero money amount
func Zero() decimal.Decimal {
	return decimal.Zero
}
