// Package validation measures rendered PDFs, most importantly their page count.
package validation

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/ledongthuc/pdf"
)

// PageCounter reports how many pages a PDF file has
type PageCounter interface {
	CountPages(ctx context.Context, pdfPath string) (int, error)
}

// PdftotextCounter counts pages from the text pdftotext extracts: the tool
// ends every page with a form feed.
type PdftotextCounter struct {
	path string
}

// NewPdftotextCounter resolves the pdftotext binary. A missing tool is a
// configuration error, reported before any rendering starts.
func NewPdftotextCounter(tool string) (*PdftotextCounter, error) {
	if tool == "" {
		tool = config.DefaultPdftotext
	}
	resolved, err := exec.LookPath(tool)
	if err != nil {
		return nil, &config.Error{
			Message: fmt.Sprintf("%s not found. Install xpdf or poppler-utils (e.g. 'brew install xpdf' or 'sudo apt-get install poppler-utils') or set %s", tool, config.PdftotextEnv),
			Cause:   err,
		}
	}
	return &PdftotextCounter{path: resolved}, nil
}

// Path returns the resolved pdftotext binary
func (c *PdftotextCounter) Path() string {
	return c.path
}

// ExtractText runs pdftotext over pages first..last and returns the UTF-8
// text. A last page of zero or less reads to the end of the document.
func (c *PdftotextCounter) ExtractText(ctx context.Context, pdfPath string, first, last int) (string, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &Error{Message: fmt.Sprintf("PDF not found: %s", pdfPath), Cause: err}
	}
	if first < 1 {
		first = 1
	}

	args := []string{"-enc", "UTF-8", "-f", strconv.Itoa(first)}
	if last > 0 {
		args = append(args, "-l", strconv.Itoa(last))
	}
	args = append(args, pdfPath, "-")

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ToolError{
			Tool:    "pdftotext",
			Message: "text extraction failed",
			Stderr:  stderr.String(),
			Cause:   err,
		}
	}
	return stdout.String(), nil
}

// CountPages extracts the whole document and counts its form-feed delimited pages
func (c *PdftotextCounter) CountPages(ctx context.Context, pdfPath string) (int, error) {
	text, err := c.ExtractText(ctx, pdfPath, 1, 0)
	if err != nil {
		return 0, err
	}
	return CountFormFeedPages(text), nil
}

// CountFormFeedPages counts the pages in pdftotext output. Each page is
// terminated by a form feed, so a trailing empty segment is not a page.
func CountFormFeedPages(text string) int {
	segments := strings.Split(text, "\f")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return len(segments)
}

// NativeCounter reads the page tree of the PDF in-process
type NativeCounter struct{}

// NewNativeCounter returns a NativeCounter
func NewNativeCounter() *NativeCounter {
	return &NativeCounter{}
}

// CountPages opens the PDF and returns its page count
func (c *NativeCounter) CountPages(ctx context.Context, pdfPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("failed to open PDF %s", pdfPath), Cause: err}
	}
	defer func() { _ = f.Close() }()

	return r.NumPage(), nil
}

// ExtractPlainText returns the text content of every page of the PDF
func ExtractPlainText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to open PDF %s", pdfPath), Cause: err}
	}
	defer func() { _ = f.Close() }()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", &Error{Message: "failed to extract text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &Error{Message: "failed to read extracted text", Cause: err}
	}
	return buf.String(), nil
}

// NewCounter builds the counter named by kind (pdftotext or native)
func NewCounter(kind, pdftotextPath string) (PageCounter, error) {
	switch kind {
	case config.CounterNative:
		return NewNativeCounter(), nil
	case config.CounterPdftotext, "":
		return NewPdftotextCounter(pdftotextPath)
	default:
		return nil, &config.Error{Message: fmt.Sprintf("unknown page counter %q", kind)}
	}
}
