// Package types provides type definitions for structured data used throughout the resume-compiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContentType selects how an Item's contents are laid out
type ContentType string

const (
	// ContentList renders one bullet line per content entry
	ContentList ContentType = "list"
	// ContentParagraph renders all entries as one comma-joined sentence
	ContentParagraph ContentType = "paragraph"
)

// Valid reports whether the content type is one the renderer understands
func (c ContentType) Valid() bool {
	return c == ContentList || c == ContentParagraph
}

// Alignment is the horizontal alignment of the contact line
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// DefaultContactSeparator joins contact entries when the document sets none
const DefaultContactSeparator = " | "

// ResumeDocument is the root of a resume data file
type ResumeDocument struct {
	Name     string    `yaml:"name" json:"name" validate:"required"`
	Contact  Contact   `yaml:"contact" json:"contact"`
	Sections []Section `yaml:"sections" json:"sections" validate:"dive"`
	QR       QR        `yaml:"qr,omitempty" json:"qr,omitempty"`
}

// Contact is the line of contact details printed under the name
type Contact struct {
	Entries   []string  `yaml:"entries" json:"entries"`
	Separator string    `yaml:"separator,omitempty" json:"separator,omitempty"`
	Align     Alignment `yaml:"align,omitempty" json:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

// Line joins the contact entries with the configured separator
func (c Contact) Line() string {
	sep := c.Separator
	if sep == "" {
		sep = DefaultContactSeparator
	}
	return strings.Join(c.Entries, sep)
}

// Section is a named group of items, optionally introduced by a header rule
type Section struct {
	Name      string `yaml:"name" json:"name" validate:"required"`
	AddHeader bool   `yaml:"addHeader" json:"addHeader"`
	Items     []Item `yaml:"items" json:"items" validate:"dive"`
}

// Item is a titled or untitled block of content within a section.
// Title, Description and Annotation are optional; an empty string means absent.
type Item struct {
	Title       string      `yaml:"title,omitempty" json:"title,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Annotation  string      `yaml:"rightAlign,omitempty" json:"rightAlign,omitempty"`
	ContentType ContentType `yaml:"contentType" json:"contentType"`
	Contents    []string    `yaml:"contents" json:"contents"`
}

// HasTitleLine reports whether the item starts with a title line
func (i Item) HasTitleLine() bool {
	return i.Title != "" || i.Description != "" || i.Annotation != ""
}

// QR describes an optional QR code printed in the bottom-right corner
type QR struct {
	Include bool   `yaml:"include" json:"include"`
	Link    string `yaml:"link,omitempty" json:"link,omitempty" validate:"required_if=Include true,omitempty,url"`
	Dim     int    `yaml:"dim,omitempty" json:"dim,omitempty" validate:"required_if=Include true,omitempty,gt=0"`
}

// Validate checks the document with struct tags and then the layout rules
// the renderer depends on. Failures are returned as *DataError.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &DataError{
				Field:   fieldErrs[0].Namespace(),
				Message: fmt.Sprintf("failed on %q rule", fieldErrs[0].Tag()),
				Cause:   err,
			}
		}
		return &DataError{Message: "invalid document", Cause: err}
	}
	return d.CheckLayout()
}

// CheckLayout verifies the invariants the renderer relies on: a non-empty
// contact list, known content types and non-empty paragraphs.
func (d *ResumeDocument) CheckLayout() error {
	if len(d.Contact.Entries) == 0 {
		return &DataError{Field: "contact.entries", Message: "contact list is empty", Cause: ErrEmptyContact}
	}
	for si, section := range d.Sections {
		for ii, item := range section.Items {
			field := fmt.Sprintf("sections[%d].items[%d]", si, ii)
			if !item.ContentType.Valid() {
				return &DataError{
					Field:   field + ".contentType",
					Message: fmt.Sprintf("unrecognized content type %q", item.ContentType),
					Cause:   ErrInvalidContent,
				}
			}
			if item.ContentType == ContentParagraph && len(item.Contents) == 0 {
				return &DataError{Field: field + ".contents", Message: "paragraph has no contents", Cause: ErrEmptyParagraph}
			}
		}
	}
	return nil
}
