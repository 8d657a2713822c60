// Package rendering lays out resume documents as PDF files.
package rendering

import "fmt"

// RenderError represents a failure while laying out the document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure writing the rendered PDF to disk
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("write error: %s", e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
