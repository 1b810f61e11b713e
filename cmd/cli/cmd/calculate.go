// Package cmd - calculate command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"genmaint-cost/adapters/storage"
	"genmaint-cost/core/engine"
	"genmaint-cost/core/output"
	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/config"
	"genmaint-cost/internal/errors"
	"genmaint-cost/internal/logging"
)

var (
	servicesFlag    string
	frequenciesFlag []string
	fluidsFlag      string
	yearsFlag       int
	escalationFlag  float64
	formatFlag      string
	bookFlag        string
	saveFlag        bool
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate [generators.json]",
	Short: "Price a generator fleet",
	Long: `Price every generator in the list against the pricing book and print
the per-unit and contract totals.

The generator list is a JSON array of {"assetId", "kw", "manufacturer"}.

Examples:
  genmaint-cost calculate generators.json --services A,B,D,E
  genmaint-cost calculate generators.json --services A --freq A=4
  genmaint-cost calculate generators.json --services A,B --years 5 --escalation 0.03`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&servicesFlag, "services", "s", "A,B,D,E", "comma-separated service codes")
	calculateCmd.Flags().StringSliceVar(&frequenciesFlag, "freq", nil, "per-service annual frequency overrides (e.g. A=4)")
	calculateCmd.Flags().StringVar(&fluidsFlag, "fluids", "oil,fuel,coolant", "Service D fluid samples")
	calculateCmd.Flags().IntVar(&yearsFlag, "years", 1, "contract length in years including the base year")
	calculateCmd.Flags().Float64Var(&escalationFlag, "escalation", 0, "annual option-year escalation rate (e.g. 0.03)")
	calculateCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format (cli, json, csv)")
	calculateCmd.Flags().StringVar(&bookFlag, "pricing", "", "pricing book JSON document (default: built-in)")
	calculateCmd.Flags().BoolVar(&saveFlag, "save", false, "write JSON and CSV reports to the output directory")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	generators, err := storage.LoadGenerators(args[0])
	if err != nil {
		return err
	}

	bookPath := bookFlag
	if bookPath == "" {
		bookPath = cfg.Pricing.BookPath
	}
	book, err := pricing.Load(bookPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(book)
	if err != nil {
		return err
	}

	selection, err := buildSelection(book)
	if err != nil {
		return err
	}

	result, err := eng.Calculate(engine.Request{
		Generators:     generators,
		Selection:      selection,
		ContractYears:  yearsFlag,
		EscalationRate: escalationFlag,
	})
	if err != nil {
		return err
	}

	format := output.Format(formatFlag)
	if formatFlag == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.For(format)
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowDetails = cfg.Output.ShowDetails
	}
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	if saveFlag {
		name := fmt.Sprintf("pricing-%s", time.Now().Format("20060102-150405"))
		jsonPath, csvPath, err := storage.SaveResult(cfg.Output.Directory, name, result)
		if err != nil {
			return err
		}
		logging.Sugar.Infow("reports written", "json", jsonPath, "csv", csvPath)
	}

	return nil
}

// buildSelection assembles the service selection from the CLI flags,
// falling back to the book's default frequencies.
func buildSelection(book *pricing.Book) (types.ServiceSelection, error) {
	defaults := book.DefaultFrequencies()

	overrides := make(map[types.ServiceCode]int, len(frequenciesFlag))
	for _, pair := range frequenciesFlag {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return types.ServiceSelection{}, errors.Newf(errors.TypeInput, "invalid frequency override: %q", pair)
		}
		code, err := types.ParseServiceCode(parts[0])
		if err != nil {
			return types.ServiceSelection{}, err
		}
		freq, err := strconv.Atoi(parts[1])
		if err != nil || freq <= 0 {
			return types.ServiceSelection{}, errors.Newf(errors.TypeInput, "invalid frequency override: %q", pair)
		}
		overrides[code] = freq
	}

	selection := types.ServiceSelection{Frequencies: make(map[types.ServiceCode]int)}
	for _, raw := range strings.Split(servicesFlag, ",") {
		code, err := types.ParseServiceCode(raw)
		if err != nil {
			return types.ServiceSelection{}, err
		}
		if freq, ok := overrides[code]; ok {
			selection.Frequencies[code] = freq
		} else if freq := defaults[code]; freq > 0 {
			selection.Frequencies[code] = freq
		} else {
			selection.Frequencies[code] = 1
		}
	}

	if selection.Frequency(types.ServiceD) > 0 {
		for _, raw := range strings.Split(fluidsFlag, ",") {
			kind := types.FluidKind(strings.ToLower(strings.TrimSpace(raw)))
			switch kind {
			case types.FluidOil, types.FluidFuel, types.FluidCoolant:
				selection.Fluids = append(selection.Fluids, kind)
			default:
				return types.ServiceSelection{}, errors.Newf(errors.TypeInput, "unknown fluid: %q", raw)
			}
		}
	}

	return selection, nil
}
