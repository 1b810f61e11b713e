package engine

import (
	"github.com/shopspring/decimal"

	"genmaint-cost/core/types"
)

// escalationSchedule computes the per-year contract totals. Option years
// escalate compound against the base year:
//
//	year n total = year 1 total x (1 + rate)^(n-1)
//
// Each year's total is rounded to cents independently so the schedule can
// be quoted line by line.
func escalationSchedule(baseYear decimal.Decimal, years int, rate float64) []types.YearTotal {
	if years <= 1 {
		return nil
	}

	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate))
	schedule := make([]types.YearTotal, 0, years)
	for n := 1; n <= years; n++ {
		total := baseYear.Mul(factor.Pow(decimal.NewFromInt(int64(n - 1))))
		schedule = append(schedule, types.YearTotal{
			Year:  n,
			Total: types.Cents(total),
		})
	}
	return schedule
}

// ContractTotal sums an escalation schedule
func ContractTotal(schedule []types.YearTotal) decimal.Decimal {
	total := types.Zero()
	for _, year := range schedule {
		total = total.Add(year.Total)
	}
	return total
}
