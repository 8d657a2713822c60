// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-compiler/internal/fitting"
	"github.com/jonathan/resume-compiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDocument outputs a summary of a loaded resume document.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Contact:  %d entries\n", len(doc.Contact.Entries)))
	if doc.QR.Include {
		sb.WriteString(fmt.Sprintf("QR:       %s (%dpx)\n", doc.QR.Link, doc.QR.Dim))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(doc.Sections)))
	count := min(len(doc.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := doc.Sections[i]
		sb.WriteString(fmt.Sprintf("  • %s: %d items", section.Name, len(section.Items)))
		if !section.AddHeader {
			sb.WriteString(" (no header)")
		}
		sb.WriteString("\n")
	}
	if len(doc.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFitResult outputs the attempts of a successful fit search.
func (p *Printer) PrintFitResult(result *fitting.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Scale:    %.2f\n", result.Scale))
	sb.WriteString(fmt.Sprintf("Output:   %s\n\n", result.Path))
	writeAttempts(&sb, result.Attempts)

	p.printBox("FIT SEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExhausted outputs the attempts of a search in which nothing fit.
func (p *Printer) PrintExhausted(exhausted *fitting.ExhaustedError) {
	if exhausted == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠ no scale in [%.2f, %.2f] fits on one page\n", exhausted.Low, exhausted.High))
	sb.WriteString(fmt.Sprintf("Last render left at %s\n\n", exhausted.LastPath))
	writeAttempts(&sb, exhausted.Attempts)

	p.printBox("FIT SEARCH EXHAUSTED", strings.TrimSuffix(sb.String(), "\n"))
}

// writeAttempts lists the first and last attempts, eliding the middle
func writeAttempts(sb *strings.Builder, attempts []fitting.Attempt) {
	sb.WriteString(fmt.Sprintf("Attempts (%d):\n", len(attempts)))

	shown := attempts
	hidden := 0
	if len(attempts) > 2*maxItemsToShow {
		hidden = len(attempts) - 2*maxItemsToShow
		shown = append(append([]fitting.Attempt{}, attempts[:maxItemsToShow]...), attempts[len(attempts)-maxItemsToShow:]...)
	}

	for i, a := range shown {
		if hidden > 0 && i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... %d more attempts\n", hidden))
		}
		mark := " "
		if a.Pages == 1 {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s scale %.2f → %d pages\n", mark, a.Scale, a.Pages))
	}
}

// PrintCrawl outputs the pages collected by a crawl.
func (p *Printer) PrintCrawl(corpus *types.CrawlCorpus) {
	if corpus == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", len(corpus.Sources)))
	sb.WriteString(fmt.Sprintf("Words:    %d\n\n", len(strings.Fields(corpus.Corpus))))

	count := min(len(corpus.Sources), maxItemsToShow)
	for i := 0; i < count; i++ {
		src := corpus.Sources[i]
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", src.Depth, src.URL))
	}
	if len(corpus.Sources) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more pages\n", len(corpus.Sources)-maxItemsToShow))
	}

	p.printBox("CRAWL CORPUS", strings.TrimSuffix(sb.String(), "\n"))
}
