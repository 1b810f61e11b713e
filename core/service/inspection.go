package service

import (
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
)

// Inspection prices Service A, the comprehensive inspection:
// (labor + mobilization) hours at the labor rate, plus inspection parts.
type Inspection struct{}

// Code returns the service code
func (Inspection) Code() types.ServiceCode { return types.ServiceA }

// Cost prices one inspection visit
func (Inspection) Cost(book *pricing.Book, tierLabel string, _ types.ServiceSelection) (Visit, error) {
	comps, err := book.ComponentsFor(types.ServiceA, tierLabel)
	if err != nil {
		return Visit{}, err
	}

	return Visit{
		Labor:     laborDollars(book, comps),
		Materials: types.Dollars(comps.Parts),
	}, nil
}
