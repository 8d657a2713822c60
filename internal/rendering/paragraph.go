// Package rendering lays out resume documents as PDF files.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-compiler/internal/types"
)

// FormatParagraph joins entries into one sentence: all but the last are
// comma separated, the last follows ", and ", and a period closes it.
// A single entry becomes "entry.". An empty list is a data error.
func FormatParagraph(entries []string) (string, error) {
	switch len(entries) {
	case 0:
		return "", &types.DataError{Message: "paragraph has no contents", Cause: types.ErrEmptyParagraph}
	case 1:
		return entries[0] + ".", nil
	}

	last := len(entries) - 1
	return strings.Join(entries[:last], ", ") + ", and " + entries[last] + ".", nil
}
