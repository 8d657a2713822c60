// Package types provides type definitions for structured data used throughout the resume-compiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Source represents a single crawled page with metadata
type Source struct {
	URL       string `json:"url"`
	Depth     int    `json:"depth"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest
}

// CrawlCorpus represents the text collected by a crawl together with its sources.
// The CLI writes Corpus directly to a .txt file.
type CrawlCorpus struct {
	Corpus  string   `json:"corpus"`
	Sources []Source `json:"sources"`
}
