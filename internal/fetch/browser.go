// Package fetch retrieves web pages over HTTP or through a headless browser
// and reduces them to plain text.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-compiler/internal/logging"
	"go.uber.org/zap"
)

// MinContentLength is the minimum extracted text length to consider HTTP fetch successful.
// Shorter pages are retried in the browser by AutoFetcher.
const MinContentLength = 200

// DefaultSettleDelay is how long the browser waits after load for scripts to render
const DefaultSettleDelay = 2 * time.Second

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// BrowserFetcher renders pages in headless Chrome. Chrome or Chromium must be
// installed.
type BrowserFetcher struct {
	Timeout time.Duration
	Settle  time.Duration
	logger  *zap.Logger
}

// NewBrowserFetcher creates a BrowserFetcher with default timeouts
func NewBrowserFetcher(logger *zap.Logger) *BrowserFetcher {
	return &BrowserFetcher{Timeout: DefaultTimeout, Settle: DefaultSettleDelay, logger: logging.OrNop(logger)}
}

// Fetch navigates to pageURL and returns the rendered document HTML
func (f *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	f.logger.Debug("starting headless browser", zap.String("url", pageURL))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, f.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(f.Settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "browser rendering failed", Cause: err}
	}

	f.logger.Debug("browser rendered page", zap.String("url", pageURL), zap.Int("bytes", len(html)))
	return html, nil
}

// Fetcher returns the HTML of a page
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// AutoFetcher tries HTTP first and falls back to the browser when the page
// carries too little text to be anything but a script shell.
type AutoFetcher struct {
	HTTP    Fetcher
	Browser Fetcher
	logger  *zap.Logger
}

// NewAutoFetcher combines an HTTP fetcher with a browser fallback
func NewAutoFetcher(httpFetcher, browser Fetcher, logger *zap.Logger) *AutoFetcher {
	return &AutoFetcher{HTTP: httpFetcher, Browser: browser, logger: logging.OrNop(logger)}
}

// Fetch implements Fetcher
func (f *AutoFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	html, err := f.HTTP.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}
	text, err := PageText(html)
	if err == nil && !ShouldUseBrowser(text) {
		return html, nil
	}

	f.logger.Debug("page text too short, retrying in browser", zap.String("url", pageURL), zap.Int("chars", len(text)))
	rendered, err := f.Browser.Fetch(ctx, pageURL)
	if err != nil {
		f.logger.Warn("browser fallback failed, keeping HTTP content", zap.String("url", pageURL), zap.Error(err))
		return html, nil
	}
	return rendered, nil
}

// Mode names the fetch strategy selected on the command line
type Mode string

const (
	ModeHTTP    Mode = "http"
	ModeBrowser Mode = "browser"
	ModeAuto    Mode = "auto"
)

// New builds the fetcher for mode
func New(mode Mode, opts *Options, logger *zap.Logger) (Fetcher, error) {
	switch mode {
	case ModeHTTP, "":
		return NewHTTPFetcher(opts), nil
	case ModeBrowser:
		return NewBrowserFetcher(logger), nil
	case ModeAuto:
		return NewAutoFetcher(NewHTTPFetcher(opts), NewBrowserFetcher(logger), logger), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode %q (want http, browser or auto)", mode)
	}
}
