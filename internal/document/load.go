// Package document loads and normalizes resume data files.
package document

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-compiler/internal/schemas"
	"github.com/jonathan/resume-compiler/internal/types"
	schemafiles "github.com/jonathan/resume-compiler/schemas"
	"gopkg.in/yaml.v3"
)

// Load reads a resume YAML file and returns the validated document.
// Struct and layout rules are checked first so that malformed items surface
// as typed data errors; the JSON Schema is applied afterwards. The schema is
// read from the repository when it can be found relative to the working
// directory and from the copy built into the binary otherwise.
func Load(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchema); schemaPath != "" {
		return Parse(content, schemaPath)
	}
	return parse(content, func(raw any) error {
		return schemas.ValidateValueWithSchema(schemafiles.Resume, raw)
	})
}

// Parse decodes YAML content into a document. An empty schemaPath skips the
// schema check.
func Parse(content []byte, schemaPath string) (*types.ResumeDocument, error) {
	var check func(raw any) error
	if schemaPath != "" {
		check = func(raw any) error {
			return schemas.ValidateValue(schemaPath, raw)
		}
	}
	return parse(content, check)
}

func parse(content []byte, checkSchema func(raw any) error) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	Normalize(&doc)

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if checkSchema != nil {
		var raw map[string]any
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal YAML", Cause: err}
		}
		if err := checkSchema(raw); err != nil {
			return nil, &types.DataError{Message: "document does not match schema", Cause: err}
		}
	}

	return &doc, nil
}

// Normalize trims surrounding whitespace from every text field and drops
// blank contact and content entries.
func Normalize(doc *types.ResumeDocument) {
	doc.Name = strings.TrimSpace(doc.Name)
	doc.Contact.Entries = compact(doc.Contact.Entries)
	for si := range doc.Sections {
		section := &doc.Sections[si]
		section.Name = strings.TrimSpace(section.Name)
		for ii := range section.Items {
			item := &section.Items[ii]
			item.Title = strings.TrimSpace(item.Title)
			item.Description = strings.TrimSpace(item.Description)
			item.Annotation = strings.TrimSpace(item.Annotation)
			item.Contents = compact(item.Contents)
		}
	}
	doc.QR.Link = strings.TrimSpace(doc.QR.Link)
}

func compact(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
