// Package rendering lays out resume documents as PDF files.
package rendering

import "fmt"

// Base sizes at scale 1.0. Font sizes are in points, spacing in millimetres.
const (
	BaseHeadingSize    = 24.0
	BaseSubheadingSize = 12.0
	BaseBodySize       = 10.0
	BaseCellHeight     = 5.0
	BaseBigLine        = 1.5
	BaseSmallLine      = 0.5
)

// Metrics holds the font sizes and spacing for one scale factor. Every
// field is the matching base constant multiplied by Scale.
type Metrics struct {
	Scale          float64
	HeadingSize    float64
	SubheadingSize float64
	BodySize       float64
	CellHeight     float64
	BigLine        float64
	SmallLine      float64
}

// NewMetrics scales the base constants linearly. The scale must be positive.
func NewMetrics(scale float64) (Metrics, error) {
	if !(scale > 0) {
		return Metrics{}, &RenderError{Message: fmt.Sprintf("scale factor must be positive, got %v", scale)}
	}
	return Metrics{
		Scale:          scale,
		HeadingSize:    BaseHeadingSize * scale,
		SubheadingSize: BaseSubheadingSize * scale,
		BodySize:       BaseBodySize * scale,
		CellHeight:     BaseCellHeight * scale,
		BigLine:        BaseBigLine * scale,
		SmallLine:      BaseSmallLine * scale,
	}, nil
}
