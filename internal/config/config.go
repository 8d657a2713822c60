// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDataFile is the resume document read when --data is not set
	DefaultDataFile = "resume.yaml"
	// DataDirFile is the resume document read when --data is set
	DataDirFile = "data/resume.yaml"
	// DefaultOutput is where the rendered PDF is written
	DefaultOutput = "resume.pdf"
	// DefaultQRImage is where the QR code PNG is written before it is embedded
	DefaultQRImage = "qr.png"
	// DefaultMinScale and DefaultMaxScale bound the fit search
	DefaultMinScale = 0.5
	DefaultMaxScale = 1.3
	// DefaultPdftotext is looked up on PATH when no explicit tool path is given
	DefaultPdftotext = "pdftotext"

	// CounterPdftotext counts pages by running the external pdftotext tool
	CounterPdftotext = "pdftotext"
	// CounterNative counts pages by parsing the PDF in-process
	CounterNative = "native"

	// PdftotextEnv overrides the pdftotext path when neither flag nor config sets it
	PdftotextEnv = "PDFTOTEXT_PATH"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataFile   string `json:"data_file,omitempty"`    // Explicit resume YAML path, overrides use_data_dir
	UseDataDir bool   `json:"use_data_dir,omitempty"` // Read data/resume.yaml instead of resume.yaml
	Output     string `json:"output,omitempty"`       // Rendered PDF path
	QRImage    string `json:"qr_image,omitempty"`     // QR code PNG path

	// Fit search
	MinScale      float64 `json:"min_scale,omitempty"`
	MaxScale      float64 `json:"max_scale,omitempty"`
	Counter       string  `json:"counter,omitempty"`        // pdftotext or native
	PdftotextPath string  `json:"pdftotext_path,omitempty"` // Path to the pdftotext binary

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
	Verbose   bool   `json:"verbose,omitempty"` // Print the attempt summary box
}

// Defaults returns the built-in configuration
func Defaults() Config {
	pdftotext := os.Getenv(PdftotextEnv)
	if pdftotext == "" {
		pdftotext = DefaultPdftotext
	}
	return Config{
		Output:        DefaultOutput,
		QRImage:       DefaultQRImage,
		MinScale:      DefaultMinScale,
		MaxScale:      DefaultMaxScale,
		Counter:       CounterPdftotext,
		PdftotextPath: pdftotext,
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &Error{Message: "config path is empty"}
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &Error{Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Message: "failed to parse config JSON", Cause: err}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are not checked here; flags fill them after merging.
func (c *Config) Validate() error {
	if c.MinScale < 0 {
		return &Error{Message: "'min_scale' must be positive"}
	}
	if c.MaxScale < 0 {
		return &Error{Message: "'max_scale' must be positive"}
	}
	if c.MinScale > 0 && c.MaxScale > 0 && c.MinScale > c.MaxScale {
		return &Error{Message: fmt.Sprintf("'min_scale' (%.2f) is greater than 'max_scale' (%.2f)", c.MinScale, c.MaxScale)}
	}

	switch c.Counter {
	case "", CounterPdftotext, CounterNative:
	default:
		return &Error{Message: fmt.Sprintf("unknown counter %q (want %q or %q)", c.Counter, CounterPdftotext, CounterNative)}
	}

	if c.DataFile != "" {
		if _, err := os.Stat(c.DataFile); os.IsNotExist(err) {
			return &Error{Message: fmt.Sprintf("data file not found: %s", c.DataFile)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.QRImage == "" {
		result.QRImage = defaults.QRImage
	}
	if result.Counter == "" {
		result.Counter = defaults.Counter
	}
	if result.PdftotextPath == "" {
		result.PdftotextPath = defaults.PdftotextPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.MinScale == 0 {
		result.MinScale = defaults.MinScale
	}
	if result.MaxScale == 0 {
		result.MaxScale = defaults.MaxScale
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DataPath returns the resume document path: an explicit DataFile wins,
// otherwise UseDataDir picks between the two supported locations.
func (c *Config) DataPath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	if c.UseDataDir {
		return DataDirFile
	}
	return DefaultDataFile
}
