// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-compiler/internal/qr"
	"github.com/jonathan/resume-compiler/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume once at a fixed scale",
	Long:  "Loads the resume document and renders it to a PDF at the given scale factor, overwriting the output file. An output of - writes the PDF to stdout.",
	RunE:  runRender,
}

var (
	renderFlags documentFlags
	renderScale float64
)

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().Float64VarP(&renderScale, "size", "s", 1.0, "Scale factor applied to every font size and spacing")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	renderFlags.apply(cmd, &cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, err := documentLoader(cfg)()
	if err != nil {
		return err
	}

	renderer := rendering.NewRenderer(&rendering.Options{
		QR:     qr.NewGenerator(),
		QRPath: cfg.QRImage,
		Logger: logger,
	})
	if cfg.Output == "-" {
		return renderer.Render(doc, renderScale, os.Stdout)
	}

	pages, err := renderer.RenderFile(doc, renderScale, cfg.Output)
	if err != nil {
		return err
	}

	logger.Info("rendered resume", zap.String("path", cfg.Output), zap.Float64("scale", renderScale), zap.Int("pages", pages))
	_, _ = fmt.Fprintf(os.Stdout, "Rendered %s at scale %.2f (%d pages)\n", cfg.Output, renderScale, pages)
	return nil
}
