// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-compiler/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the resume document without rendering it",
	Long:  "Loads the resume document and checks it against the JSON Schema and the layout rules the renderer depends on.",
	RunE:  runValidate,
}

var validateFlags documentFlags

func init() {
	validateCmd.Flags().StringVarP(&validateFlags.in, "in", "i", "", "Path to resume YAML (overrides --data)")
	validateCmd.Flags().BoolVar(&validateFlags.useData, "data", false, "Read data/resume.yaml instead of resume.yaml")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	validateFlags.apply(cmd, &cfg)

	doc, err := documentLoader(cfg)()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintDocument(doc)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s is valid (%d sections)\n", cfg.DataPath(), len(doc.Sections))
	return nil
}
