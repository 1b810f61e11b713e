package output

import (
	"encoding/json"
	"io"

	"genmaint-cost/core/types"
)

// JSONFormatter renders the full result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the result
func (f *JSONFormatter) Render(w io.Writer, result *types.BatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
