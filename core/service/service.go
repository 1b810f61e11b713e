// Package service implements the per-visit cost calculators for the five
// maintenance services. Each calculator is a pure function of the pricing
// book and the tier the generator classified into; nothing here holds state.
package service

import (
	"github.com/shopspring/decimal"

	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// Visit is the priced cost of a single service visit, split the way bid
// schedules want it: labor dollars vs. materials dollars.
type Visit struct {
	// Labor is the labor + mobilization dollars
	Labor decimal.Decimal

	// Materials is the parts, fluids, fees and rental dollars
	Materials decimal.Decimal
}

// Total returns the full per-visit cost
func (v Visit) Total() decimal.Decimal {
	return v.Labor.Add(v.Materials)
}

// Calculator computes the per-visit cost of one service
type Calculator interface {
	// Code returns the service code this calculator implements
	Code() types.ServiceCode

	// Cost prices one visit from the book's components for the given
	// tier. Selection carries per-request options (Service D fluids).
	Cost(book *pricing.Book, tierLabel string, sel types.ServiceSelection) (Visit, error)
}

// calculators is the closed set, keyed by code
var calculators = map[types.ServiceCode]Calculator{
	types.ServiceA: Inspection{},
	types.ServiceB: OilFilter{},
	types.ServiceC: Coolant{},
	types.ServiceD: FluidAnalysis{},
	types.ServiceE: LoadBank{},
}

// For returns the calculator for a service code
func For(code types.ServiceCode) (Calculator, error) {
	calc, ok := calculators[code]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown service code: %q", code)
	}
	return calc, nil
}

// laborDollars prices the labor and mobilization hours of a visit.
// Mobilization bills at the same effective labor rate as on-site work.
func laborDollars(book *pricing.Book, comps pricing.Components) decimal.Decimal {
	hours := decimal.NewFromFloat(comps.Labor).Add(decimal.NewFromFloat(comps.Mobilization))
	return hours.Mul(book.EffectiveLaborRate())
}
