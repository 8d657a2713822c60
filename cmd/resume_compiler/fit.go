// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/jonathan/resume-compiler/internal/fitting"
	"github.com/jonathan/resume-compiler/internal/observability"
	"github.com/jonathan/resume-compiler/internal/qr"
	"github.com/jonathan/resume-compiler/internal/rendering"
	"github.com/jonathan/resume-compiler/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Find the largest scale at which the resume fits on one page",
	Long: `Renders the resume at every scale from high down to low in steps of 0.01 and
stops at the first render that is exactly one page. If none fits, the render
at the lowest scale is left at the output path and the command fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFit,
}

var (
	fitFlags     documentFlags
	fitSizes     []float64
	fitCounter   string
	fitPdftotext string
)

func init() {
	fitFlags.register(fitCmd)
	fitCmd.Flags().Float64SliceVarP(&fitSizes, "size", "s", []float64{config.DefaultMinScale, config.DefaultMaxScale}, "Scale range as low and high (--size 0.5 1.3, --size 0.5,1.3 or the flag twice)")
	fitCmd.Flags().StringVar(&fitCounter, "counter", "", "Page counter: pdftotext or native (default: pdftotext)")
	fitCmd.Flags().StringVar(&fitPdftotext, "pdftotext", "", "Path to the pdftotext binary (default: $"+config.PdftotextEnv+" or PATH lookup)")

	rootCmd.AddCommand(fitCmd)
}

// scaleRange reads the low and high bounds from --size values. In the
// "--size <low> <high>" form the flag holds only low and high arrives as the
// single positional argument.
func scaleRange(sizes []float64, args []string) (float64, float64, error) {
	if len(args) > 0 {
		if len(sizes) != 1 || len(args) != 1 {
			return 0, 0, &config.Error{Message: fmt.Sprintf("unexpected arguments %q; give the scale range as --size <low> <high>", args)}
		}
		high, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return 0, 0, &config.Error{Message: fmt.Sprintf("invalid high scale %q", args[0]), Cause: err}
		}
		return sizes[0], high, nil
	}
	if len(sizes) != 2 {
		return 0, 0, &config.Error{Message: fmt.Sprintf("--size needs exactly two values (low and high), got %d", len(sizes))}
	}
	return sizes[0], sizes[1], nil
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	fitFlags.apply(cmd, &cfg)
	if len(args) > 0 && !cmd.Flags().Changed("size") {
		return &config.Error{Message: fmt.Sprintf("unexpected argument %q; give the scale range as --size <low> <high>", args[0])}
	}
	if cmd.Flags().Changed("size") {
		low, high, err := scaleRange(fitSizes, args)
		if err != nil {
			return err
		}
		cfg.MinScale, cfg.MaxScale = low, high
	}
	if fitCounter != "" {
		cfg.Counter = fitCounter
	}
	if fitPdftotext != "" {
		cfg.PdftotextPath = fitPdftotext
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	counter, err := validation.NewCounter(cfg.Counter, cfg.PdftotextPath)
	if err != nil {
		return err
	}
	if pdftotext, ok := counter.(*validation.PdftotextCounter); ok {
		logger.Debug("counting pages with pdftotext", zap.String("path", pdftotext.Path()))
	}

	renderer := rendering.NewRenderer(&rendering.Options{
		QR:     qr.NewGenerator(),
		QRPath: cfg.QRImage,
		Logger: logger,
	})
	searcher := fitting.NewSearcher(
		fitting.FileRenderer(documentLoader(cfg), renderer, cfg.Output),
		counter,
		logger,
	)

	printer := observability.NewPrinter(os.Stdout)
	result, err := searcher.Search(context.Background(), cfg.MinScale, cfg.MaxScale)
	if err != nil {
		var exhausted *fitting.ExhaustedError
		if cfg.Verbose && errors.As(err, &exhausted) {
			printer.PrintExhausted(exhausted)
		}
		return err
	}

	if cfg.Verbose {
		printer.PrintFitResult(result)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Resume fits on one page at scale %.2f (%s)\n", result.Scale, result.Path)
	return nil
}
