// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/jonathan/resume-compiler/internal/document"
	"github.com/jonathan/resume-compiler/internal/logging"
	"github.com/jonathan/resume-compiler/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// documentFlags are shared by the commands that read the resume document
type documentFlags struct {
	in      string
	useData bool
	out     string
	qrImage string
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.in, "in", "i", "", "Path to resume YAML (overrides --data)")
	cmd.Flags().BoolVar(&f.useData, "data", false, "Read "+config.DataDirFile+" instead of "+config.DefaultDataFile)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Path to output PDF (default: "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&f.qrImage, "qr-image", "", "Path for the generated QR code PNG (default: "+config.DefaultQRImage+")")
}

// apply copies explicitly set flags over the configuration
func (f *documentFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("in") {
		cfg.DataFile = f.in
	}
	if cmd.Flags().Changed("data") {
		cfg.UseDataDir = f.useData
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = f.out
	}
	if cmd.Flags().Changed("qr-image") {
		cfg.QRImage = f.qrImage
	}
}

// loadSettings builds the effective configuration: defaults, then the
// optional config file, then the persistent flags.
func loadSettings() (config.Config, error) {
	defaults := config.Defaults()
	cfg := defaults

	if rootConfigFile != "" {
		fileCfg, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(defaults)
	}

	if rootLogLevel != "" {
		cfg.LogLevel = rootLogLevel
	}
	if rootLogFormat != "" {
		cfg.LogFormat = rootLogFormat
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(&logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	})
}

// documentLoader reads the configured document afresh on every call
func documentLoader(cfg config.Config) func() (*types.ResumeDocument, error) {
	path := cfg.DataPath()
	return func() (*types.ResumeDocument, error) {
		return document.Load(path)
	}
}
