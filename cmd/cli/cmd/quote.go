// Package cmd - quote command
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"genmaint-cost/adapters/quote"
	"genmaint-cost/adapters/storage"
	"genmaint-cost/core/engine"
	"genmaint-cost/core/pricing"
	"genmaint-cost/internal/config"
	"genmaint-cost/internal/logging"
)

var (
	customerFlag    string
	rfpFlag         string
	endpointFlag    string
	retryReportFlag string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [generators.json]",
	Short: "Price a fleet and submit per-unit quotes to the CPQ service",
	Long: `Price every generator and submit one quote per unit to the external
CPQ endpoint. Failed submissions are recorded in the report file; a later
run with --retry resubmits only the failed units.

Examples:
  genmaint-cost quote generators.json --services A,B,D,E --customer "LBNL"
  genmaint-cost quote generators.json --retry reports/quotes-20250110.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&servicesFlag, "services", "s", "A,B,D,E", "comma-separated service codes")
	quoteCmd.Flags().StringVar(&fluidsFlag, "fluids", "oil,fuel,coolant", "Service D fluid samples")
	quoteCmd.Flags().StringVar(&bookFlag, "pricing", "", "pricing book JSON document (default: built-in)")
	quoteCmd.Flags().StringVar(&customerFlag, "customer", "", "customer name on the quotes")
	quoteCmd.Flags().StringVar(&rfpFlag, "rfp", "", "RFP number on the quotes")
	quoteCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "CPQ endpoint override")
	quoteCmd.Flags().StringVar(&retryReportFlag, "retry", "", "previous submission report; only its failed units are resubmitted")
	_ = quoteCmd.MarkFlagRequired("customer")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	ctx := context.Background()

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
		Generators: generators,
		Selection:  selection,
	})
	if err != nil {
		return err
	}

	customer := quote.Customer{Name: customerFlag}
	payloads := quote.PayloadsFromResult(result, customer, rfpFlag)

	if retryReportFlag != "" {
		previous, err := storage.LoadQuoteReport(retryReportFlag)
		if err != nil {
			return err
		}
		payloads = quote.PayloadsForUnits(payloads, previous.FailedUnits())
		logging.Sugar.Infow("retry pass", "units", len(payloads))
	}

	if len(payloads) == 0 {
		fmt.Println("Nothing to submit.")
		return nil
	}

	quoteCfg := cfg.Quote
	if endpointFlag != "" {
		quoteCfg.Endpoint = endpointFlag
	}
	client := quote.NewClient(quoteCfg)
	report := client.SubmitBatch(ctx, payloads)

	name := fmt.Sprintf("quotes-%s", time.Now().Format("20060102-150405"))
	path, err := storage.SaveQuoteReport(cfg.Output.Directory, name, report)
	if err != nil {
		return err
	}

	fmt.Printf("Submitted %d quotes: %d successful, %d failed\n",
		report.Total, len(report.Successful), len(report.Failed))
	fmt.Printf("Report: %s\n", path)

	return nil
}
