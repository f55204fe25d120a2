package spline

import (
	"cmp"
	"fmt"
	"image"
	"slices"

	"github.com/tphakala/go-natural-spline/internal/engine"
	"github.com/tphakala/go-natural-spline/internal/points"
)

// Interpolate builds the natural cubic spline through pts in one shot.
//
// pts may be in any order; it is not modified. Unlike a Plotter, which
// toggles on collision, duplicate x values are an error here.
func Interpolate(pts []ControlPoint) ([]Segment, error) {
	sorted, err := sortedKnots(pts)
	if err != nil {
		return nil, err
	}

	xs, ys := points.Split(sorted)
	return engine.Build(xs, ys)
}

// Evaluate returns the value and derivatives of segs at x, using the same
// lookup policy as Plotter.Query.
func Evaluate(segs []Segment, x float64) Evaluation {
	return engine.Evaluate(segs, x)
}

// Sample evaluates segs at n evenly spaced abscissas over [lo, hi].
func Sample(segs []Segment, lo, hi float64, n int) (xs, ys []float64) {
	return engine.SampleUniform(segs, lo, hi, n)
}

// Render rasterizes the spline through pts into a fresh image using the
// default colors and identity transform.
func Render(pts []ControlPoint, width, height int) (*image.RGBA, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sorted, err := sortedKnots(pts)
	if err != nil {
		return nil, err
	}

	pl, err := buildPipeline(&cfg)
	if err != nil {
		return nil, err
	}

	snap, err := pl.Run(sorted)
	if err != nil {
		return nil, err
	}
	return snap.Buffer.Image(), nil
}

// sortedKnots returns a copy of pts sorted by x, rejecting sets a spline
// cannot be built from.
func sortedKnots(pts []ControlPoint) ([]ControlPoint, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}

	sorted := slices.Clone(pts)
	slices.SortStableFunc(sorted, func(a, b ControlPoint) int {
		return cmp.Compare(a.X, b.X)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].X == sorted[i-1].X {
			return nil, fmt.Errorf("%w: x=%g", ErrDuplicateX, sorted[i].X)
		}
	}
	return sorted, nil
}
