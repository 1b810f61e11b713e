package output

import (
	"io"

	"github.com/gocarina/gocsv"

	"genmaint-cost/core/types"
)

// csvRow is one generator's line in the per-unit export.
// Column names match the bid workbook's per-unit pricing sheet.
type csvRow struct {
	AssetID      string  `csv:"assetId"`
	Manufacturer string  `csv:"manufacturer"`
	KW           float64 `csv:"kwRating"`
	Tier         string  `csv:"tier"`
	ServiceA     string  `csv:"serviceA"`
	ServiceB     string  `csv:"serviceB"`
	ServiceC     string  `csv:"serviceC"`
	ServiceD     string  `csv:"serviceD"`
	ServiceE     string  `csv:"serviceE"`
	TotalAnnual  string  `csv:"totalAnnual"`
}

// CSVFormatter renders the per-unit breakdown as CSV
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format { return FormatCSV }

// Render writes one row per priced generator
func (f *CSVFormatter) Render(w io.Writer, result *types.BatchResult) error {
	rows := make([]csvRow, 0, len(result.Units))
	for _, unit := range result.Units {
		row := csvRow{
			AssetID:      unit.Generator.ID,
			Manufacturer: unit.Generator.Manufacturer,
			KW:           unit.Generator.KW,
			Tier:         unit.TierRange,
			TotalAnnual:  unit.AnnualTotal.StringFixed(2),
		}
		for _, sc := range unit.Services {
			annual := sc.Annual.StringFixed(2)
			switch sc.Service {
			case types.ServiceA:
				row.ServiceA = annual
			case types.ServiceB:
				row.ServiceB = annual
			case types.ServiceC:
				row.ServiceC = annual
			case types.ServiceD:
				row.ServiceD = annual
			case types.ServiceE:
				row.ServiceE = annual
			}
		}
		rows = append(rows, row)
	}

	return gocsv.Marshal(&rows, w)
}
