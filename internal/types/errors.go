// Package types provides type definitions for structured data used throughout the resume-compiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContent is returned for an item whose contentType is not list or paragraph
	ErrInvalidContent = errors.New("invalid content type")
	// ErrEmptyContact is returned when the contact list has no entries
	ErrEmptyContact = errors.New("empty contact list")
	// ErrEmptyParagraph is returned for a paragraph item without contents
	ErrEmptyParagraph = errors.New("empty paragraph")
	// ErrEmptyDocument is returned when a rendered PDF has no pages
	ErrEmptyDocument = errors.New("rendered document has no pages")
)

// DataError represents a malformed resume document
type DataError struct {
	Field   string
	Message string
	Cause   error
}

func (e *DataError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("data error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("data error: %s", msg)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}
