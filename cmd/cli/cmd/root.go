// Package cmd provides the CLI commands for genmaint-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"genmaint-cost/internal/config"
	"genmaint-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "genmaint-cost",
	Short: "Price generator maintenance contracts",
	Long: `genmaint-cost prices preventative maintenance contracts for generator
fleets: per-unit service costs by kW tier, contract totals with option-year
escalation, and quote submission to the CPQ service.

Examples:
  genmaint-cost calculate generators.json --services A,B,D,E
  genmaint-cost calculate generators.json --services A,B --format csv
  genmaint-cost quote generators.json --services A,B,D,E --customer "LBNL"
  genmaint-cost settings`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.genmaint-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("genmaint-cost version 0.1.0")
	},
}
