// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_compiler",
	Short:         "Resume Compiler renders a YAML resume to a one-page PDF",
	Long:          "Resume Compiler lays out a structured YAML resume as a PDF and searches for the largest scale factor at which it fits on a single page.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootConfigFile string
	rootLogLevel   string
	rootLogFormat  string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: console or json (default: console)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
