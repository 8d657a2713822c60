// Package rendering lays out resume documents as PDF files.
package rendering

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-compiler/internal/logging"
	"github.com/jonathan/resume-compiler/internal/types"
	"go.uber.org/zap"
)

// QRGenerator writes a square PNG encoding link to path
type QRGenerator interface {
	Generate(link string, dim int, path string) error
}

// Options configures a Renderer
type Options struct {
	// QR produces the QR code image when a document includes one
	QR QRGenerator
	// QRPath is where the QR code image is written before it is embedded
	QRPath string
	Logger *zap.Logger
}

// Renderer lays out resume documents as single-column A4 PDFs
type Renderer struct {
	qr     QRGenerator
	qrPath string
	logger *zap.Logger
}

// NewRenderer creates a Renderer. A nil opts renders documents without QR support.
func NewRenderer(opts *Options) *Renderer {
	r := &Renderer{qrPath: "qr.png", logger: logging.Nop()}
	if opts == nil {
		return r
	}
	r.qr = opts.QR
	if opts.QRPath != "" {
		r.qrPath = opts.QRPath
	}
	r.logger = logging.OrNop(opts.Logger)
	return r
}

// Render lays out doc at the given scale and writes the PDF to w
func (r *Renderer) Render(doc *types.ResumeDocument, scale float64, w io.Writer) error {
	l, err := r.layout(doc, scale)
	if err != nil {
		return err
	}
	if err := l.pdf.Output(w); err != nil {
		return &WriteError{Path: "(writer)", Cause: err}
	}
	return nil
}

// RenderFile lays out doc at the given scale and writes the PDF to path,
// overwriting any existing file. It returns the number of pages laid out.
func (r *Renderer) RenderFile(doc *types.ResumeDocument, scale float64, path string) (int, error) {
	l, err := r.layout(doc, scale)
	if err != nil {
		return 0, err
	}
	pages := l.pdf.PageCount()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, &WriteError{Path: path, Cause: err}
		}
	}
	if err := l.pdf.OutputFileAndClose(path); err != nil {
		return 0, &WriteError{Path: path, Cause: err}
	}

	r.logger.Debug("rendered resume",
		zap.String("path", path),
		zap.Float64("scale", scale),
		zap.Int("pages", pages),
	)
	return pages, nil
}

func (r *Renderer) layout(doc *types.ResumeDocument, scale float64) (*layout, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}
	if err := doc.CheckLayout(); err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(scale)
	if err != nil {
		return nil, err
	}

	l := newLayout(metrics)
	drawName(l, doc.Name)
	drawContact(l, doc.Contact)
	for _, section := range doc.Sections {
		if err := drawSection(l, section); err != nil {
			return nil, err
		}
	}
	if doc.QR.Include {
		if err := r.drawQR(l, doc.QR); err != nil {
			return nil, err
		}
	}

	if err := l.pdf.Error(); err != nil {
		return nil, &RenderError{Message: "PDF layout failed", Cause: err}
	}
	return l, nil
}

func drawName(l *layout, name string) {
	l.accent(l.metrics.HeadingSize)
	l.pdf.CellFormat(0, 2*l.metrics.CellHeight, l.encode(name), "", 1, "C", false, 0, "")
}

func drawContact(l *layout, contact types.Contact) {
	l.body()
	l.block(contact.Line(), alignCode(contact.Align))
	l.space(2 * l.metrics.BigLine)
}

func drawSection(l *layout, section types.Section) error {
	if section.AddHeader {
		drawHeader(l, section.Name)
	}
	for _, item := range section.Items {
		if err := drawItem(l, item); err != nil {
			return err
		}
		l.space(l.metrics.SmallLine)
	}
	l.space(l.metrics.BigLine)
	return nil
}

func drawHeader(l *layout, name string) {
	l.accent(l.metrics.SubheadingSize)
	l.rest(name, "L")
	l.rule()
	l.space(l.metrics.BigLine)
	l.body()
}

func drawItem(l *layout, item types.Item) error {
	if item.HasTitleLine() {
		drawTitleLine(l, item)
	}

	switch item.ContentType {
	case types.ContentList:
		for _, entry := range item.Contents {
			l.pdf.CellFormat(bulletIndent, l.metrics.CellHeight, "-", "", 0, "L", false, 0, "")
			l.block(entry, "J")
		}
	case types.ContentParagraph:
		text, err := FormatParagraph(item.Contents)
		if err != nil {
			return err
		}
		l.block(text, "J")
	default:
		return &types.DataError{
			Field:   "contentType",
			Message: fmt.Sprintf("unrecognized content type %q", item.ContentType),
			Cause:   types.ErrInvalidContent,
		}
	}
	return nil
}

// drawTitleLine writes "Title | description" on the left and the annotation
// flush right on the same line.
func drawTitleLine(l *layout, item types.Item) {
	if item.Title != "" {
		l.bold()
		l.inline(item.Title)
	}
	l.body()
	if item.Description != "" {
		description := item.Description
		if item.Title != "" {
			description = " | " + description
		}
		l.inline(description)
	}
	if item.Annotation != "" {
		l.rest(item.Annotation, "R")
		return
	}
	l.space(l.metrics.CellHeight)
}

func (r *Renderer) drawQR(l *layout, qr types.QR) error {
	if r.qr == nil {
		return &RenderError{Message: "document includes a QR code but no QR generator is configured"}
	}
	if err := r.qr.Generate(qr.Link, qr.Dim, r.qrPath); err != nil {
		return &RenderError{Message: "failed to generate QR code", Cause: err}
	}

	size := float64(qr.Dim) * qrScale * l.metrics.Scale
	l.pdf.ImageOptions(r.qrPath,
		l.pageWidth-size-qrOffset, l.pageHeight-size-qrOffset,
		size, size,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

func alignCode(a types.Alignment) string {
	switch a {
	case types.AlignLeft:
		return "L"
	case types.AlignRight:
		return "R"
	default:
		return "C"
	}
}
