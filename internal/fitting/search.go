// Package fitting searches for the largest scale factor at which a resume fits on one page.
package fitting

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/jonathan/resume-compiler/internal/logging"
	"github.com/jonathan/resume-compiler/internal/types"
	"github.com/jonathan/resume-compiler/internal/validation"
	"go.uber.org/zap"
)

// RenderFunc renders the resume at scale and returns the path of the written PDF
type RenderFunc func(ctx context.Context, scale float64) (string, error)

// Attempt records the page count measured at one scale
type Attempt struct {
	Scale float64 `json:"scale"`
	Pages int     `json:"pages"`
}

// Result is a successful search
type Result struct {
	RunID    string    `json:"run_id"`
	Scale    float64   `json:"scale"`
	Path     string    `json:"path"`
	Attempts []Attempt `json:"attempts"`
}

// Searcher renders at decreasing scales until the output is a single page
type Searcher struct {
	render  RenderFunc
	counter validation.PageCounter
	logger  *zap.Logger
}

// NewSearcher creates a Searcher. A nil logger discards log output.
func NewSearcher(render RenderFunc, counter validation.PageCounter, logger *zap.Logger) *Searcher {
	return &Searcher{render: render, counter: counter, logger: logging.OrNop(logger)}
}

// Candidates lists the scales tried for [low, high] in search order: every
// hundredth from high down to low.
func Candidates(low, high float64) ([]float64, error) {
	if !(low > 0) || !(high > 0) {
		return nil, &config.Error{Message: fmt.Sprintf("scale range must be positive, got [%v, %v]", low, high)}
	}
	if low > high {
		return nil, &config.Error{Message: fmt.Sprintf("scale range is inverted: low %v is greater than high %v", low, high)}
	}

	// Bounds snap inward so no candidate falls outside [low, high]. The epsilon
	// absorbs float noise such as 0.29*100 = 28.999999999999996.
	lo := int(math.Ceil(low*100 - 1e-9))
	hi := int(math.Floor(high*100 + 1e-9))
	if hi < 1 {
		return nil, &config.Error{Message: fmt.Sprintf("scale range [%v, %v] is below 0.01", low, high)}
	}
	if lo < 1 {
		lo = 1
	}
	if lo > hi {
		return nil, &config.Error{Message: fmt.Sprintf("scale range [%v, %v] contains no multiple of 0.01", low, high)}
	}

	scales := make([]float64, 0, hi-lo+1)
	for i := hi; i >= lo; i-- {
		scales = append(scales, float64(i)/100)
	}
	return scales, nil
}

// Search tries each candidate scale in turn and stops at the first one whose
// render is exactly one page. Every attempt is rendered and counted before
// the next begins.
func (s *Searcher) Search(ctx context.Context, low, high float64) (*Result, error) {
	if s.render == nil || s.counter == nil {
		return nil, &config.Error{Message: "searcher needs a renderer and a page counter"}
	}
	scales, err := Candidates(low, high)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))
	logger.Info("starting fit search",
		zap.Float64("low", low),
		zap.Float64("high", high),
		zap.Int("candidates", len(scales)),
	)

	attempts := make([]Attempt, 0, len(scales))
	var lastPath string

	for _, scale := range scales {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := s.render(ctx, scale)
		if err != nil {
			return nil, &AttemptError{Scale: scale, Cause: err}
		}
		lastPath = path

		pages, err := s.counter.CountPages(ctx, path)
		if err != nil {
			return nil, &AttemptError{Scale: scale, Cause: err}
		}
		attempts = append(attempts, Attempt{Scale: scale, Pages: pages})
		logger.Debug("attempt", zap.Float64("scale", scale), zap.Int("pages", pages))

		switch {
		case pages == 0:
			return nil, &types.DataError{
				Message: fmt.Sprintf("render at scale %.2f produced no pages", scale),
				Cause:   types.ErrEmptyDocument,
			}
		case pages == 1:
			logger.Info("fit found", zap.Float64("scale", scale), zap.Int("attempts", len(attempts)))
			return &Result{RunID: runID, Scale: scale, Path: path, Attempts: attempts}, nil
		}
	}

	logger.Warn("fit search exhausted", zap.Int("attempts", len(attempts)), zap.String("path", lastPath))
	return nil, &ExhaustedError{Low: low, High: high, LastPath: lastPath, Attempts: attempts}
}
