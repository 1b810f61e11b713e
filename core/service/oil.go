package service

import (
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
)

// OilFilter prices Service B, the oil and filter service:
// labor plus the filter, plus the tier's oil volume at the marked-up
// per-gallon oil price.
type OilFilter struct{}

// Code returns the service code
func (OilFilter) Code() types.ServiceCode { return types.ServiceB }

// Cost prices one oil and filter visit
func (OilFilter) Cost(book *pricing.Book, tierLabel string, _ types.ServiceSelection) (Visit, error) {
	comps, err := book.ComponentsFor(types.ServiceB, tierLabel)
	if err != nil {
		return Visit{}, err
	}

	oil := types.Dollars(comps.OilGallons).Mul(book.MarkedUpOilPrice())

	return Visit{
		Labor:     laborDollars(book, comps),
		Materials: types.Dollars(comps.FilterCost).Add(oil),
	}, nil
}
