// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"genmaint-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing book settings
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Quote contains quote submission settings
	Quote QuoteConfig `json:"quote"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig locates the pricing book document
type PricingConfig struct {
	// BookPath is the path to the pricing book JSON document.
	// Empty means the built-in defaults are used.
	BookPath string `json:"book_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, csv)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-service breakdown
	ShowDetails bool `json:"show_details"`

	// Directory is where report files are written
	Directory string `json:"directory"`
}

// QuoteConfig contains settings for the external CPQ quote endpoint
type QuoteConfig struct {
	// Endpoint is the base URL of the quote service
	Endpoint string `json:"endpoint"`

	// TimeoutSeconds is the hard per-call timeout
	TimeoutSeconds int `json:"timeout_seconds"`

	// MaxAttempts bounds retries for transient failures
	MaxAttempts int `json:"max_attempts"`

	// InitialBackoffSeconds is the first retry delay
	InitialBackoffSeconds int `json:"initial_backoff_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	outDir := filepath.Join(homeDir, ".genmaint-cost", "reports")

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
			Directory:     outDir,
		},
		Quote: QuoteConfig{
			Endpoint:              "http://localhost:3002",
			TimeoutSeconds:        60,
			MaxAttempts:           5,
			InitialBackoffSeconds: 5,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
