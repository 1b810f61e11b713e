// Package pricing holds the pricing book: global rate settings plus the
// per-service, per-tier cost component tables. The book is the single source
// of truth for every number the calculators use; it is loaded once and
// treated as immutable for the duration of a calculation.
package pricing

import (
	"github.com/shopspring/decimal"

	"genmaint-cost/core/types"
)

// RateSettings are the global pricing scalars.
// The JSON field names match the calculator settings document.
type RateSettings struct {
	// LaborRate is the standard commercial labor rate in $/hour
	LaborRate float64 `json:"laborRate"`

	// MobilizationRate is the travel/setup rate in $/hour. Retained for
	// settings-document compatibility; mobilization hours bill at the
	// effective labor rate.
	MobilizationRate float64 `json:"mobilizationRate"`

	// MileageRate is the per-mile travel charge
	MileageRate float64 `json:"mileageRate"`

	// OilPrice is the base oil cost in $/gallon
	OilPrice float64 `json:"oilPrice"`

	// OilMarkup is the multiplier applied to the oil base cost
	OilMarkup float64 `json:"oilMarkup"`

	// CoolantPrice is the base coolant cost in $/gallon
	CoolantPrice float64 `json:"coolantPrice"`

	// CoolantMarkup is the multiplier applied to the coolant base cost
	CoolantMarkup float64 `json:"coolantMarkup"`

	// PartsMarkup is the multiplier applied to parts at resale. Retained
	// for settings-document compatibility; the tier tables carry parts
	// at their billed price.
	PartsMarkup float64 `json:"partsMarkup"`

	// FreightMarkup is the multiplier applied to freight charges.
	// Retained for settings-document compatibility.
	FreightMarkup float64 `json:"freightMarkup"`

	// PrevailingWage, when enabled, substitutes a government-mandated
	// hourly wage for the standard technician wage
	PrevailingWage *PrevailingWage `json:"prevailingWage,omitempty"`

	// LaborRateOverride is an explicit manual bid rate. It takes
	// precedence over both the standard and prevailing-wage rates.
	LaborRateOverride *float64 `json:"laborRateOverride,omitempty"`
}

// PrevailingWage describes a mandated labor wage substitution.
// The effective rate keeps the business-cost portion of the standard rate
// and swaps the technician wage: standard - baseTechWage + hourlyWage.
type PrevailingWage struct {
	// Enabled activates the substitution
	Enabled bool `json:"enabled"`

	// HourlyWage is the mandated technician wage in $/hour
	HourlyWage float64 `json:"hourlyWage"`

	// BaseTechWage is the technician wage already embedded in the
	// standard rate
	BaseTechWage float64 `json:"baseTechWage"`
}

// EffectiveLaborRate resolves the labor rate for a calculation.
// Precedence: explicit override, then prevailing-wage substitution, then
// the standard rate.
func (r RateSettings) EffectiveLaborRate() decimal.Decimal {
	if r.LaborRateOverride != nil {
		return types.Dollars(*r.LaborRateOverride)
	}
	if pw := r.PrevailingWage; pw != nil && pw.Enabled {
		return types.Dollars(r.LaborRate - pw.BaseTechWage + pw.HourlyWage)
	}
	return types.Dollars(r.LaborRate)
}

// MarkedUpOilPrice returns the per-gallon oil price with markup applied
func (r RateSettings) MarkedUpOilPrice() decimal.Decimal {
	return types.Dollars(r.OilPrice).Mul(types.Dollars(r.OilMarkup))
}

// MarkedUpCoolantPrice returns the per-gallon coolant price with markup applied
func (r RateSettings) MarkedUpCoolantPrice() decimal.Decimal {
	return types.Dollars(r.CoolantPrice).Mul(types.Dollars(r.CoolantMarkup))
}
