// Package storage writes calculation results and quote reports to flat
// files. Results are terminal output, never reloaded for mutation.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"genmaint-cost/adapters/quote"
	"genmaint-cost/core/output"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// SaveResult writes a calculation result as JSON and CSV side by side.
// Returns the two file paths.
func SaveResult(dir, name string, result *types.BatchResult) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", errors.Internal("creating report directory", err)
	}

	jsonPath := filepath.Join(dir, name+".json")
	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return "", "", errors.Internal("creating report file", err)
	}
	defer jsonFile.Close()

	jsonFormatter := &output.JSONFormatter{}
	if err := jsonFormatter.Render(jsonFile, result); err != nil {
		return "", "", errors.Internal("writing JSON report", err)
	}

	csvPath := filepath.Join(dir, name+".csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", "", errors.Internal("creating report file", err)
	}
	defer csvFile.Close()

	csvFormatter := &output.CSVFormatter{}
	if err := csvFormatter.Render(csvFile, result); err != nil {
		return "", "", errors.Internal("writing CSV report", err)
	}

	return jsonPath, csvPath, nil
}

// SaveQuoteReport writes a quote submission report as JSON
func SaveQuoteReport(dir, name string, report *quote.Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Internal("creating report directory", err)
	}

	path := filepath.Join(dir, name+".json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Internal("encoding quote report", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Internal("writing quote report", err)
	}
	return path, nil
}

// LoadQuoteReport reads a previous submission report (retry pass input)
func LoadQuoteReport(path string) (*quote.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading quote report", err)
	}

	var report quote.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "parsing quote report", err)
	}
	return &report, nil
}

// LoadGenerators reads a generator list document
func LoadGenerators(path string) ([]types.Generator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading generator list", err)
	}

	var generators []types.Generator
	if err := json.Unmarshal(data, &generators); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "parsing generator list", err)
	}
	if len(generators) == 0 {
		return nil, errors.Input("generator list is empty")
	}
	return generators, nil
}
