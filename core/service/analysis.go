package service

import (
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// FluidAnalysis prices Service D, the fluid laboratory analysis: a flat
// per-sample fee for each selected fluid. There is no labor component and
// the cost does not depend on the generator's tier.
type FluidAnalysis struct{}

// Code returns the service code
func (FluidAnalysis) Code() types.ServiceCode { return types.ServiceD }

// Cost sums the laboratory fees for the selected fluid samples
func (FluidAnalysis) Cost(book *pricing.Book, _ string, sel types.ServiceSelection) (Visit, error) {
	if len(sel.Fluids) == 0 {
		return Visit{}, errors.Input("service D selected without any fluid samples")
	}

	fees := types.Zero()
	seen := make(map[types.FluidKind]bool, len(sel.Fluids))
	for _, kind := range sel.Fluids {
		if seen[kind] {
			continue
		}
		seen[kind] = true

		fee, err := book.ServiceD.Fee(kind)
		if err != nil {
			return Visit{}, err
		}
		fees = fees.Add(types.Dollars(fee))
	}

	return Visit{Labor: types.Zero(), Materials: fees}, nil
}
