// Package crawling walks a website breadth first and collects the text of every page it reaches.
package crawling

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/jonathan/resume-compiler/internal/fetch"
	"github.com/jonathan/resume-compiler/internal/logging"
	"github.com/jonathan/resume-compiler/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// DefaultMaxDepth is the deepest level crawled; the seed is depth 1
	DefaultMaxDepth = 5
	// DefaultConcurrency bounds the fetches in flight within one level
	DefaultConcurrency = 4
	// DefaultRequestsPerSecond is the request rate across all workers
	DefaultRequestsPerSecond = 2.0
	// progressInterval is how many pages pass between progress log lines
	progressInterval = 10
)

// Fetcher returns the HTML of a page
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Options configures a crawl. Zero values take the package defaults.
type Options struct {
	MaxDepth int
	// MaxPages caps the number of pages fetched; zero means no cap
	MaxPages    int
	Concurrency int
	// RequestsPerSecond limits the request rate; a negative value disables the limit
	RequestsPerSecond float64
	Fetcher           Fetcher
	Logger            *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.RequestsPerSecond == 0 {
		o.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if o.Fetcher == nil {
		o.Fetcher = fetch.NewHTTPFetcher(nil)
	}
	o.Logger = logging.OrNop(o.Logger)
	return o
}

func (o Options) limiter() *rate.Limiter {
	if o.RequestsPerSecond < 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(o.RequestsPerSecond), 1)
}

type page struct {
	html string
	err  error
}

// Crawl fetches seed and every same-host page reachable from it within
// MaxDepth link hops, one level at a time. Each URL is fetched at most once.
// Pages that fail to fetch are logged and skipped. The corpus is the text of
// the fetched pages in visit order, joined by single spaces.
func Crawl(ctx context.Context, seed string, opts *Options) (*types.CrawlCorpus, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	start, err := NormalizeURL(seed)
	if err != nil {
		return nil, &CrawlError{Message: "invalid seed URL", Cause: err}
	}

	limiter := o.limiter()
	visited := map[string]bool{start: true}
	level := []string{start}

	var parts []string
	sources := make([]types.Source, 0)
	fetched := 0

	for depth := 1; depth <= o.MaxDepth && len(level) > 0; depth++ {
		if o.MaxPages > 0 {
			remaining := o.MaxPages - fetched
			if remaining <= 0 {
				break
			}
			if len(level) > remaining {
				level = level[:remaining]
			}
		}

		pages, err := fetchLevel(ctx, level, o, limiter)
		if err != nil {
			return nil, &CrawlError{Message: "crawl interrupted", Cause: err}
		}

		var next []string
		for i, pageURL := range level {
			fetched++
			if fetched%progressInterval == 0 {
				o.Logger.Info("crawl progress", zap.Int("pages", fetched), zap.Int("depth", depth))
			}

			p := pages[i]
			if p.err != nil {
				o.Logger.Warn("skipping page", zap.String("url", pageURL), zap.Error(p.err))
				continue
			}

			text, err := fetch.PageText(p.html)
			if err != nil {
				o.Logger.Warn("skipping unparsable page", zap.String("url", pageURL), zap.Error(err))
				continue
			}
			if text != "" {
				parts = append(parts, text)
			}
			sources = append(sources, types.Source{
				URL:       pageURL,
				Depth:     depth,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Hash:      computeHash(text),
			})

			if depth >= o.MaxDepth {
				continue
			}
			links, err := ExtractLinks(p.html, pageURL)
			if err != nil {
				o.Logger.Debug("no links extracted", zap.String("url", pageURL), zap.Error(err))
				continue
			}
			for _, link := range links {
				if !visited[link] {
					visited[link] = true
					next = append(next, link)
				}
			}
		}
		level = next
	}

	o.Logger.Info("crawl complete", zap.String("seed", start), zap.Int("pages", fetched), zap.Int("sources", len(sources)))
	return &types.CrawlCorpus{
		Corpus:  strings.Join(parts, " "),
		Sources: sources,
	}, nil
}

// fetchLevel fetches urls concurrently and returns the results in the same
// order. Only context cancellation fails the level.
func fetchLevel(ctx context.Context, urls []string, o Options, limiter *rate.Limiter) ([]page, error) {
	pages := make([]page, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			if err := limiter.Wait(gCtx); err != nil {
				return err
			}
			html, err := o.Fetcher.Fetch(gCtx, pageURL)
			pages[i] = page{html: html, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
