// Package output renders calculation results for humans and machines.
// No cost logic lives here; formatters only reshape a finished BatchResult.
package output

import (
	"io"

	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is a per-unit spreadsheet export
	FormatCSV Format = "csv"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *types.BatchResult) error
}

// For returns the formatter for a format name
func For(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %q", format)
	}
}
