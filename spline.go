package spline

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/tphakala/go-natural-spline/internal/engine"
	"github.com/tphakala/go-natural-spline/internal/points"
	"github.com/tphakala/go-natural-spline/internal/raster"
	"github.com/tphakala/go-natural-spline/internal/simdops"
)

// ControlPoint is a knot in math space: y grows upward.
type ControlPoint = points.ControlPoint

// Segment is one cubic piece A + B*t + C*t^2 + D*t^3 with t = x - X0.
type Segment = engine.Segment

// Evaluation holds a spline value and its first two derivatives.
type Evaluation = engine.Evaluation

// Change reports the outcome of a toggle.
type Change = points.Change

// ChangeKind tells whether a toggle inserted or removed points.
type ChangeKind = points.ChangeKind

// Change kinds.
const (
	Inserted = points.Inserted
	Removed  = points.Removed
	Ignored  = points.Ignored
)

// Transform maps between spline space and pixel buffer indices.
// See [IdentityTransform].
type Transform = raster.Transform

// IdentityTransform identifies pixel columns with spline x and spline y with
// pixel rows counted up from the bottom edge.
func IdentityTransform() Transform {
	return raster.Identity()
}

// Config holds plotter configuration.
type Config struct {
	// Width and Height are the pixel buffer dimensions. They are fixed for
	// the plotter's lifetime.
	Width  int
	Height int

	// HitRadius is the half-width of the toggle hit window in buffer pixels:
	// an existing point at px is hit by a click at x when
	// x-r <= px < x+r, with r = HitRadius*|Transform.ScaleX| in spline units.
	HitRadius float64

	// MarkerRadius offsets the query marker coordinate so a circle of this
	// radius drawn at the marker is centered on the curve.
	MarkerRadius float64

	// Background is the color the buffer is cleared to. It is always drawn opaque.
	Background color.RGBA

	// Trace is the color of the curve. Only its R, G and B channels are written.
	Trace color.RGBA

	// Transform maps pixel columns to query abscissas and values to rows.
	// The zero value is replaced by IdentityTransform.
	Transform Transform
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid spline configuration")

	// ErrTooFewPoints indicates fewer than two points were supplied where a
	// spline is required.
	ErrTooFewPoints = engine.ErrTooFewPoints

	// ErrDuplicateX indicates two points share an x value.
	ErrDuplicateX = errors.New("duplicate x value")
)

// DefaultConfig returns the reference configuration: an 888x888 buffer,
// hit and marker radius 6, a white trace on black, identity transform.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		HitRadius:    DefaultHitRadius,
		MarkerRadius: DefaultMarkerRadius,
		Background:   raster.Background,
		Trace:        raster.Trace,
		Transform:    raster.Identity(),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: buffer dimensions must be positive", ErrInvalidConfig)
	}

	if c.Width > maxDimension || c.Height > maxDimension {
		return fmt.Errorf("%w: buffer dimensions exceed %d", ErrInvalidConfig, maxDimension)
	}

	if !isFinite(c.HitRadius) || c.HitRadius < 0 {
		return fmt.Errorf("%w: hit radius must be a non-negative number", ErrInvalidConfig)
	}

	if !isFinite(c.MarkerRadius) || c.MarkerRadius < 0 {
		return fmt.Errorf("%w: marker radius must be a non-negative number", ErrInvalidConfig)
	}

	t := c.Transform
	if t == (Transform{}) {
		return nil
	}
	if !isFinite(t.OriginX) || !isFinite(t.OriginY) {
		return fmt.Errorf("%w: transform origin must be finite", ErrInvalidConfig)
	}
	if !isFinite(t.ScaleX) || !isFinite(t.ScaleY) || t.ScaleX == 0 || t.ScaleY == 0 {
		return fmt.Errorf("%w: transform scales must be finite and non-zero", ErrInvalidConfig)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Info describes the state of a plotter.
type Info struct {
	// Points is the number of control points.
	Points int

	// Segments is the number of spline segments (Points-1, or 0).
	Segments int

	// Width and Height are the buffer dimensions.
	Width  int
	Height int

	// Drawn is the number of pixel columns the current trace occupies.
	Drawn int

	// Stages lists the rebuild pipeline stages in order.
	Stages []string

	// SIMDType describes the instruction set used by the curve statistics.
	SIMDType string
}

// GetInfo returns information about a plotter.
func GetInfo(p *Plotter) Info {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Info{
		Points:   len(p.snap.Points),
		Segments: len(p.snap.Segments),
		Width:    p.config.Width,
		Height:   p.config.Height,
		Drawn:    p.snap.Drawn,
		Stages:   p.pipeline.Stages(),
		SIMDType: simdops.Info(),
	}
}
