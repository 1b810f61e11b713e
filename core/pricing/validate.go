package pricing

import (
	"fmt"

	"genmaint-cost/core/tier"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// Validate checks that the book supplies every rate and every tier the
// calculators will read. A book that fails validation must abort the whole
// calculation: downstream numbers would be silently wrong.
func (b *Book) Validate() error {
	// Only rates the calculators read are required. Fields carried for
	// settings-document compatibility (mobilizationRate, mileageRate,
	// partsMarkup, freightMarkup) may be omitted.
	rateChecks := []struct {
		field string
		value float64
	}{
		{"laborRate", b.LaborRate},
		{"oilPrice", b.OilPrice},
		{"oilMarkup", b.OilMarkup},
		{"coolantPrice", b.CoolantPrice},
		{"coolantMarkup", b.CoolantMarkup},
	}
	for _, check := range rateChecks {
		if check.value <= 0 {
			return errors.Config(check.field, "must be a positive rate")
		}
	}

	if pw := b.PrevailingWage; pw != nil && pw.Enabled {
		if pw.HourlyWage <= 0 {
			return errors.Config("prevailingWage.hourlyWage", "must be a positive rate")
		}
		if pw.BaseTechWage <= 0 {
			return errors.Config("prevailingWage.baseTechWage", "must be a positive rate")
		}
	}
	if b.LaborRateOverride != nil && *b.LaborRateOverride <= 0 {
		return errors.Config("laborRateOverride", "must be a positive rate")
	}

	for _, svc := range []types.ServiceCode{types.ServiceA, types.ServiceB, types.ServiceC, types.ServiceE} {
		if err := b.validateTable(svc); err != nil {
			return err
		}
	}

	feeChecks := []struct {
		field string
		value float64
	}{
		{"serviceD.oilAnalysisCost", b.ServiceD.Oil},
		{"serviceD.coolantAnalysisCost", b.ServiceD.Coolant},
		{"serviceD.fuelAnalysisCost", b.ServiceD.Fuel},
	}
	for _, check := range feeChecks {
		if check.value <= 0 {
			return errors.Config(check.field, "must be a positive fee")
		}
	}

	return nil
}

func (b *Book) validateTable(svc types.ServiceCode) error {
	table, err := b.Table(svc)
	if err != nil {
		return err
	}

	name := "service" + string(svc)
	if len(table.Data) == 0 {
		return errors.Config(name+".data", "tier table is empty")
	}

	for _, label := range tier.Labels() {
		comps, ok := table.Data[label]
		if !ok {
			return errors.Config(fmt.Sprintf("%s.data.%s", name, label), "tier missing from pricing book")
		}
		if comps.Labor <= 0 {
			return errors.Config(fmt.Sprintf("%s.data.%s.labor", name, label), "must be positive hours")
		}
		if comps.Mobilization < 0 {
			return errors.Config(fmt.Sprintf("%s.data.%s.mobilization", name, label), "must be non-negative hours")
		}

		switch svc {
		case types.ServiceB:
			if comps.OilGallons <= 0 {
				return errors.Config(fmt.Sprintf("%s.data.%s.oilGallons", name, label), "must be a positive volume")
			}
			if comps.FilterCost < 0 {
				return errors.Config(fmt.Sprintf("%s.data.%s.filterCost", name, label), "must be non-negative")
			}
		case types.ServiceC:
			if comps.CoolantGallons <= 0 {
				return errors.Config(fmt.Sprintf("%s.data.%s.coolantGallons", name, label), "must be a positive volume")
			}
		case types.ServiceE:
			if comps.LoadBankRental <= 0 {
				return errors.Config(fmt.Sprintf("%s.data.%s.loadBankRental", name, label), "must be a positive cost")
			}
		}
	}

	return nil
}
