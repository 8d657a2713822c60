// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-compiler/internal/crawling"
	"github.com/jonathan/resume-compiler/internal/fetch"
	"github.com/jonathan/resume-compiler/internal/observability"
	"github.com/spf13/cobra"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl a website and write the text of every page",
	Long:  "Walks a website breadth first from a seed URL, following same-host links up to a maximum depth, and writes the collected text to a file.",
	RunE:  runCrawl,
}

var (
	crawlSeedURL     string
	crawlMaxDepth    int
	crawlMaxPages    int
	crawlConcurrency int
	crawlRate        float64
	crawlFetchMode   string
	crawlOutputFile  string
	crawlSourcesFile string
)

func init() {
	crawlCmd.Flags().StringVarP(&crawlSeedURL, "url", "u", "", "Seed URL (required)")
	crawlCmd.Flags().IntVar(&crawlMaxDepth, "depth", crawling.DefaultMaxDepth, "Maximum depth; the seed is depth 1")
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "Maximum pages to fetch (0 for no limit)")
	crawlCmd.Flags().IntVar(&crawlConcurrency, "concurrency", crawling.DefaultConcurrency, "Concurrent fetches per level")
	crawlCmd.Flags().Float64Var(&crawlRate, "rate", crawling.DefaultRequestsPerSecond, "Requests per second (negative for no limit)")
	crawlCmd.Flags().StringVar(&crawlFetchMode, "fetch", string(fetch.ModeHTTP), "Fetch mode: http, browser or auto")
	crawlCmd.Flags().StringVarP(&crawlOutputFile, "out", "o", "output.txt", "Path to output text file")
	crawlCmd.Flags().StringVar(&crawlSourcesFile, "sources", "", "Optional path for a JSON list of crawled pages")

	if err := crawlCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	fetcher, err := fetch.New(fetch.Mode(crawlFetchMode), nil, logger)
	if err != nil {
		return err
	}

	corpus, err := crawling.Crawl(context.Background(), crawlSeedURL, &crawling.Options{
		MaxDepth:          crawlMaxDepth,
		MaxPages:          crawlMaxPages,
		Concurrency:       crawlConcurrency,
		RequestsPerSecond: crawlRate,
		Fetcher:           fetcher,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	if err := writeFile(crawlOutputFile, []byte(corpus.Corpus)); err != nil {
		return err
	}

	if crawlSourcesFile != "" {
		sourcesJSON, err := json.MarshalIndent(corpus.Sources, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sources to JSON: %w", err)
		}
		if err := writeFile(crawlSourcesFile, sourcesJSON); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCrawl(corpus)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Crawled %d pages into %s\n", len(corpus.Sources), crawlOutputFile)
	return nil
}

// writeFile writes content to path, creating parent directories
func writeFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
