package output

import (
	"fmt"
	"io"
	"strings"

	"genmaint-cost/core/types"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct {
	// ShowDetails includes the per-unit service breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, result *types.BatchResult) error {
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "GENERATOR MAINTENANCE PRICING")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "%-16s %-10s %8s  %12s\n", "ASSET", "TIER", "kW", "ANNUAL")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, unit := range result.Units {
		fmt.Fprintf(w, "%-16s %-10s %8.0f  $%12s\n",
			unit.Generator.ID, unit.TierRange, unit.Generator.KW,
			unit.AnnualTotal.StringFixed(2))

		if f.ShowDetails {
			for _, sc := range unit.Services {
				fmt.Fprintf(w, "    %-34s %2dx/yr  $%12s\n",
					sc.Label, sc.Frequency, sc.Annual.StringFixed(2))
			}
		}
	}

	if len(result.ByService) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, "SERVICE TOTALS")
		for _, code := range types.AllServices {
			total, ok := result.ByService[code]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %-36s $%12s\n", code.Label(), total.StringFixed(2))
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "  %-36s $%12s\n", "Labor & Mobilization", result.LaborTotal.StringFixed(2))
	fmt.Fprintf(w, "  %-36s $%12s\n", "Parts & Materials", result.MaterialsTotal.StringFixed(2))
	fmt.Fprintf(w, "  %-36s $%12s\n", "ANNUAL TOTAL", result.GrandTotal.StringFixed(2))

	if len(result.Years) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintln(w, "CONTRACT SCHEDULE")
		for _, year := range result.Years {
			fmt.Fprintf(w, "  Year %-2d %28s $%12s\n", year.Year, "", year.Total.StringFixed(2))
		}
	}

	if len(result.Failures) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 72))
		fmt.Fprintf(w, "SKIPPED UNITS (%d)\n", len(result.Failures))
		for _, failure := range result.Failures {
			fmt.Fprintf(w, "  %-16s %s\n", failure.Generator.ID, failure.Reason)
		}
	}

	fmt.Fprintln(w, rule)
	return nil
}
