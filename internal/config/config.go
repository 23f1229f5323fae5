// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// Defaults for values a config file may leave out
const (
	DefaultPort          = 8080
	DefaultExportTimeout = 60 // seconds
	DefaultExportRate    = 10 // PDF exports per minute per client
	DefaultOutputDir     = "out"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Rendering
	Theme  types.ThemeConfig `json:"theme,omitzero"`           // Default theme for records without one
	Labels string            `json:"labels,omitempty"`         // Section label language: "en" or "de"
	Output string            `json:"output_dir,omitempty"`     // Directory for rendered files
	Chrome string            `json:"chrome_path,omitempty"`    // Browser binary for PDF export
	Export int               `json:"export_timeout,omitempty"` // PDF export timeout in seconds

	// Server
	Port           int      `json:"port,omitempty"`
	ExportRate     int      `json:"export_rate,omitempty"` // PDF exports per minute per client
	AllowedOrigins []string `json:"allowed_origins,omitempty"`

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are not checked here; CLI flags may still supply them.
func (c *Config) Validate() error {
	if err := theme.Validate(c.Theme); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, ok := rendering.LabelsFor(c.Labels); !ok {
		return fmt.Errorf("config error: unknown label language %q (want \"en\" or \"de\")", c.Labels)
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Export < 0 {
		return fmt.Errorf("config error: 'export_timeout' must be non-negative")
	}
	if c.ExportRate < 0 {
		return fmt.Errorf("config error: 'export_rate' must be non-negative")
	}

	// Validate paths (if specified)
	if c.Output != "" {
		if info, err := os.Stat(c.Output); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.Output)
		}
	}
	if c.Chrome != "" {
		if _, err := os.Stat(c.Chrome); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome_path not found: %s", c.Chrome)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Theme keys merge one by one so a file can override just the color
	if result.Theme.PrimaryColor == "" {
		result.Theme.PrimaryColor = defaults.Theme.PrimaryColor
	}
	if result.Theme.FontFamily == "" {
		result.Theme.FontFamily = defaults.Theme.FontFamily
	}
	if result.Theme.Layout == "" {
		result.Theme.Layout = defaults.Theme.Layout
	}

	// String fields: use default if empty
	if result.Labels == "" {
		result.Labels = defaults.Labels
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Chrome == "" {
		result.Chrome = defaults.Chrome
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Export == 0 {
		result.Export = defaults.Export
	}
	if result.ExportRate == 0 {
		result.ExportRate = defaults.ExportRate
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills connection settings from the environment when the file leaves them
// empty: DATABASE_URL, CHROME_PATH and PORT.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if c.DatabaseURL == "" {
		c.DatabaseURL = getenv("DATABASE_URL")
	}
	if c.Chrome == "" {
		c.Chrome = getenv("CHROME_PATH")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Theme:      theme.DefaultConfig(),
		Labels:     "en",
		Output:     DefaultOutputDir,
		Port:       DefaultPort,
		Export:     DefaultExportTimeout,
		ExportRate: DefaultExportRate,
	}
}

// RenderOptions returns the rendering options the configuration selects
func (c *Config) RenderOptions() rendering.Options {
	labels, _ := rendering.LabelsFor(c.Labels)
	return rendering.Options{Labels: labels}
}

// ExportTimeout returns the PDF export timeout as a duration
func (c *Config) ExportTimeout() time.Duration {
	if c.Export <= 0 {
		return DefaultExportTimeout * time.Second
	}
	return time.Duration(c.Export) * time.Second
}
