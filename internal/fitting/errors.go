// Package fitting searches for the largest scale factor at which a resume fits on one page.
package fitting

import (
	"errors"
	"fmt"
)

// ErrExhausted is matched by ExhaustedError
var ErrExhausted = errors.New("no scale factor fits on one page")

// ExhaustedError reports a search in which every candidate scale overflowed.
// The PDF from the last attempt is left at LastPath.
type ExhaustedError struct {
	Low      float64
	High     float64
	LastPath string
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	last := 0
	if n := len(e.Attempts); n > 0 {
		last = e.Attempts[n-1].Pages
	}
	return fmt.Sprintf("fit error: %v: tried %d scales in [%.2f, %.2f], smallest still renders %d pages",
		ErrExhausted, len(e.Attempts), e.Low, e.High, last)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// AttemptError wraps a render or count failure at one scale
type AttemptError struct {
	Scale float64
	Cause error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("fit error: attempt at scale %.2f: %v", e.Scale, e.Cause)
}

func (e *AttemptError) Unwrap() error {
	return e.Cause
}
