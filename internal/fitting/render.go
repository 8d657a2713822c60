// Package fitting searches for the largest scale factor at which a resume fits on one page.
package fitting

import (
	"context"

	"github.com/jonathan/resume-compiler/internal/rendering"
	"github.com/jonathan/resume-compiler/internal/types"
)

// LoadFunc produces the document for one attempt
type LoadFunc func() (*types.ResumeDocument, error)

// FileRenderer returns a RenderFunc that reloads the document and renders it
// to output on every attempt, overwriting the previous attempt's PDF.
func FileRenderer(load LoadFunc, renderer *rendering.Renderer, output string) RenderFunc {
	return func(ctx context.Context, scale float64) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		doc, err := load()
		if err != nil {
			return "", err
		}
		if _, err := renderer.RenderFile(doc, scale, output); err != nil {
			return "", err
		}
		return output, nil
	}
}
