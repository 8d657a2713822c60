// Package rendering lays out resume documents as PDF files.
package rendering

import "strings"

// SimplifyText replaces characters the PDF core fonts cannot encode with
// close ASCII equivalents and folds line breaks and tabs into spaces.
// Characters inside Windows-1252 (curly quotes, en and em dashes, bullets)
// are left alone; the page translator encodes them.
func SimplifyText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\n', '\r', '\t':
			result.WriteByte(' ')
		case '‐', '‑', '‒', '−':
			result.WriteByte('-')
		case '→':
			result.WriteString("->")
		case '←':
			result.WriteString("<-")
		case '≤':
			result.WriteString("<=")
		case '≥':
			result.WriteString(">=")
		case '≈':
			result.WriteByte('~')
		case '✓', '✔':
			result.WriteString("+")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
