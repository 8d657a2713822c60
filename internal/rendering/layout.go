// Package rendering lays out resume documents as PDF files.
package rendering

import (
	"github.com/go-pdf/fpdf"
)

// AccentColor is the RGB colour used for the name, section headers and rules
var AccentColor = [3]int{31, 73, 125}

const (
	fontFamily = "Arial"
	// bulletIndent is the width of the bullet column in list items (mm)
	bulletIndent = 5.0
	// qrScale converts the QR pixel dimension into millimetres at scale 1.0
	qrScale = 0.3
	// qrOffset is the distance of the QR code from the page's bottom and right edges (mm)
	qrOffset = 10.0
)

// layout is the drawing state for one render: the page, the scaled metrics
// and the text encoder. It is created per render and passed to every
// drawing step instead of living in package state.
type layout struct {
	pdf     *fpdf.Fpdf
	metrics Metrics
	encode  func(string) string

	pageWidth   float64
	pageHeight  float64
	leftMargin  float64
	rightMargin float64
}

func newLayout(metrics Metrics) *layout {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("resume-compiler", false)
	pdf.AddPage()

	width, height := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	l := &layout{
		pdf:         pdf,
		metrics:     metrics,
		pageWidth:   width,
		pageHeight:  height,
		leftMargin:  left,
		rightMargin: right,
	}
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	l.encode = func(s string) string { return translate(SimplifyText(s)) }

	pdf.SetDrawColor(AccentColor[0], AccentColor[1], AccentColor[2])
	l.body()
	return l
}

// body switches to regular black body text
func (l *layout) body() {
	l.pdf.SetTextColor(0, 0, 0)
	l.pdf.SetFont(fontFamily, "", l.metrics.BodySize)
}

// accent switches to bold accent-coloured text of the given size
func (l *layout) accent(size float64) {
	l.pdf.SetTextColor(AccentColor[0], AccentColor[1], AccentColor[2])
	l.pdf.SetFont(fontFamily, "B", size)
}

// bold switches to bold body text, keeping the current colour
func (l *layout) bold() {
	l.pdf.SetFont(fontFamily, "B", l.metrics.BodySize)
}

// inline writes text in a cell exactly as wide as the text and stays on the line
func (l *layout) inline(text string) {
	encoded := l.encode(text)
	l.pdf.CellFormat(l.pdf.GetStringWidth(encoded), l.metrics.CellHeight, encoded, "", 0, "L", false, 0, "")
}

// rest writes text in a cell spanning to the right margin and moves to the next line
func (l *layout) rest(text, align string) {
	l.pdf.CellFormat(0, l.metrics.CellHeight, l.encode(text), "", 1, align, false, 0, "")
}

// block writes wrapped text from the current x to the right margin
func (l *layout) block(text, align string) {
	l.pdf.MultiCell(0, l.metrics.CellHeight, l.encode(text), "", align, false)
}

// rule draws a horizontal line across the text area at the current y
func (l *layout) rule() {
	y := l.pdf.GetY()
	l.pdf.Line(l.leftMargin, y, l.pageWidth-l.rightMargin, y)
}

func (l *layout) space(h float64) {
	l.pdf.Ln(h)
}
