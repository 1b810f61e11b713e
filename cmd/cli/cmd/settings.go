// Package cmd - settings command
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"genmaint-cost/core/pricing"
	"genmaint-cost/internal/config"
)

// settingsCmd prints the active pricing book
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the active pricing book",
	Long: `Print the pricing book the calculators will use, as JSON. Useful for
seeding a custom book document: redirect to a file, edit, and pass it back
with --pricing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := pricing.Load(config.Get().Pricing.BookPath)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(book)
	},
}
