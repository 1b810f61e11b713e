package service

import (
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
)

// Coolant prices Service C, the coolant system service:
// labor plus the tier's coolant volume at the marked-up per-gallon price,
// plus hose and belt replacement.
type Coolant struct{}

// Code returns the service code
func (Coolant) Code() types.ServiceCode { return types.ServiceC }

// Cost prices one coolant service visit
func (Coolant) Cost(book *pricing.Book, tierLabel string, _ types.ServiceSelection) (Visit, error) {
	comps, err := book.ComponentsFor(types.ServiceC, tierLabel)
	if err != nil {
		return Visit{}, err
	}

	coolant := types.Dollars(comps.CoolantGallons).Mul(book.MarkedUpCoolantPrice())

	return Visit{
		Labor:     laborDollars(book, comps),
		Materials: coolant.Add(types.Dollars(comps.HoseBeltCost)),
	}, nil
}
