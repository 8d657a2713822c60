package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-compiler/internal/fitting"
	"github.com/jonathan/resume-compiler/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		Name:    "Jane Doe",
		Contact: types.Contact{Entries: []string{"jane@example.com", "555-0100"}},
		Sections: []types.Section{
			{Name: "EDUCATION", AddHeader: true, Items: []types.Item{{ContentType: types.ContentList}}},
			{Name: "SKILLS"},
		},
		QR: types.QR{Include: true, Link: "https://github.com/janedoe", Dim: 100},
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME DOCUMENT")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "2 entries")
	assert.Contains(t, output, "EDUCATION: 1 items")
	assert.Contains(t, output, "SKILLS: 0 items (no header)")
	assert.Contains(t, output, "100px")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFitResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFitResult(&fitting.Result{
		RunID:    "run-1",
		Scale:    0.9,
		Path:     "resume.pdf",
		Attempts: []fitting.Attempt{{Scale: 1.0, Pages: 2}, {Scale: 0.9, Pages: 1}},
	})
	output := buf.String()

	assert.Contains(t, output, "FIT SEARCH")
	assert.Contains(t, output, "Scale:    0.90")
	assert.Contains(t, output, "scale 1.00 → 2 pages")
	assert.Contains(t, output, "✓ scale 0.90 → 1 pages")
}

func TestPrintExhausted_ElidesLongHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var attempts []fitting.Attempt
	for i := 130; i >= 50; i-- {
		attempts = append(attempts, fitting.Attempt{Scale: float64(i) / 100, Pages: 2})
	}
	p.PrintExhausted(&fitting.ExhaustedError{Low: 0.5, High: 1.3, LastPath: "resume.pdf", Attempts: attempts})
	output := buf.String()

	assert.Contains(t, output, "FIT SEARCH EXHAUSTED")
	assert.Contains(t, output, "Attempts (81)")
	assert.Contains(t, output, fmt.Sprintf("... %d more attempts", 81-2*maxItemsToShow))
	assert.Contains(t, output, "scale 1.30")
	assert.Contains(t, output, "scale 0.50")
	assert.NotContains(t, output, "scale 0.90")
}

func TestPrintCrawl(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var sources []types.Source
	for i := 0; i < 7; i++ {
		sources = append(sources, types.Source{URL: fmt.Sprintf("https://example.com/%d", i), Depth: 2})
	}
	p.PrintCrawl(&types.CrawlCorpus{Corpus: "one two three", Sources: sources})
	output := buf.String()

	assert.Contains(t, output, "CRAWL CORPUS")
	assert.Contains(t, output, "Pages:    7")
	assert.Contains(t, output, "Words:    3")
	assert.Contains(t, output, "[2] https://example.com/0")
	assert.Contains(t, output, "... and 2 more pages")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line))
	}
}
