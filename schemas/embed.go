// Package schemas holds the JSON Schemas for the documents the CLI reads.
package schemas

import _ "embed"

// Resume is the JSON Schema for resume YAML documents
//
//go:embed resume.schema.json
var Resume string
