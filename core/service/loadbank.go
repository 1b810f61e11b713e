package service

import (
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
)

// LoadBank prices Service E, the load bank test: labor plus load bank
// rental, transformer rental where the tier requires voltage matching, and
// equipment delivery.
type LoadBank struct{}

// Code returns the service code
func (LoadBank) Code() types.ServiceCode { return types.ServiceE }

// Cost prices one load bank test visit
func (LoadBank) Cost(book *pricing.Book, tierLabel string, _ types.ServiceSelection) (Visit, error) {
	comps, err := book.ComponentsFor(types.ServiceE, tierLabel)
	if err != nil {
		return Visit{}, err
	}

	rentals := types.Dollars(comps.LoadBankRental).
		Add(types.Dollars(comps.TransformerRental)).
		Add(types.Dollars(comps.DeliveryCost))

	return Visit{
		Labor:     laborDollars(book, comps),
		Materials: rentals,
	}, nil
}
