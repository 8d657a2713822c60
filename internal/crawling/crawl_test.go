package crawling

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jonathan/resume-compiler/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site serves a small link graph and counts requests per path
type site struct {
	mu    sync.Mutex
	hits  map[string]int
	pages map[string]string
}

func newSite() *site {
	return &site{
		hits: make(map[string]int),
		pages: map[string]string{
			"/":  `<html><body><h1>Home</h1><a href="/a"></a><a href="/b"></a><a href="https://elsewhere.example/x"></a></body></html>`,
			"/a": `<html><body><p>Alpha</p><a href="/a"></a><a href="/c#top"></a><a href="/"></a></body></html>`,
			"/b": `<html><body><p>Beta</p><a href="/a"></a><a href="/broken"></a></body></html>`,
			"/c": `<html><body><p>Gamma</p><a href="/d"></a></body></html>`,
			"/d": `<html><body><p>Delta</p></body></html>`,
		},
	}
}

func (s *site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.mu.Unlock()

	body, ok := s.pages[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(body))
}

func (s *site) hitCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func testOptions(depth int) *Options {
	return &Options{MaxDepth: depth, RequestsPerSecond: -1, Concurrency: 3}
}

func TestCrawl_DepthOne(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	corpus, err := Crawl(context.Background(), server.URL, testOptions(1))
	require.NoError(t, err)
	assert.Equal(t, "Home", corpus.Corpus)
	require.Len(t, corpus.Sources, 1)
	assert.Equal(t, 1, corpus.Sources[0].Depth)
	assert.Equal(t, 0, s.hitCount("/a"))
}

func TestCrawl_DepthTwo(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	corpus, err := Crawl(context.Background(), server.URL, testOptions(2))
	require.NoError(t, err)
	assert.Equal(t, "Home Alpha Beta", corpus.Corpus)
	assert.Equal(t, 0, s.hitCount("/c"))
}

func TestCrawl_FullDepthVisitsEachPageOnce(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	corpus, err := Crawl(context.Background(), server.URL, testOptions(5))
	require.NoError(t, err)
	assert.Equal(t, "Home Alpha Beta Gamma Delta", corpus.Corpus)

	for _, path := range []string{"/", "/a", "/b", "/c", "/d", "/broken"} {
		assert.Equal(t, 1, s.hitCount(path), "path %s", path)
	}

	depths := make(map[string]int)
	for _, src := range corpus.Sources {
		depths[src.URL] = src.Depth
		assert.Len(t, src.Hash, 64)
	}
	assert.Equal(t, 3, depths[server.URL+"/c"])
	assert.Equal(t, 4, depths[server.URL+"/d"])
	assert.NotContains(t, depths, server.URL+"/broken")
}

func TestCrawl_Deterministic(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	first, err := Crawl(context.Background(), server.URL, testOptions(5))
	require.NoError(t, err)
	second, err := Crawl(context.Background(), server.URL, testOptions(5))
	require.NoError(t, err)
	assert.Equal(t, first.Corpus, second.Corpus)
}

func TestCrawl_MaxPages(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	opts := testOptions(5)
	opts.MaxPages = 2
	corpus, err := Crawl(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "Home Alpha", corpus.Corpus)
	assert.Equal(t, 0, s.hitCount("/b"))
}

func TestCrawl_InvalidSeed(t *testing.T) {
	_, err := Crawl(context.Background(), "not a url", nil)
	require.Error(t, err)

	var crawlErr *CrawlError
	assert.ErrorAs(t, err, &crawlErr)
}

func TestCrawl_CancelledContext(t *testing.T) {
	s := newSite()
	server := httptest.NewServer(s)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Crawl(ctx, server.URL, testOptions(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

type recordingFetcher struct {
	mu   sync.Mutex
	urls []string
}

func (f *recordingFetcher) Fetch(_ context.Context, pageURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, pageURL)
	return "<p>stub</p>", nil
}

func TestCrawl_UsesConfiguredFetcher(t *testing.T) {
	f := &recordingFetcher{}
	opts := testOptions(1)
	opts.Fetcher = f

	corpus, err := Crawl(context.Background(), "https://example.com/#about", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com"}, f.urls)
	assert.Equal(t, "stub", corpus.Corpus)
}

func TestCrawl_HTTPFetcherErrorsAreSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	opts := testOptions(2)
	opts.Fetcher = fetch.NewHTTPFetcher(nil)
	corpus, err := Crawl(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Empty(t, corpus.Corpus)
	assert.Empty(t, corpus.Sources)
}
