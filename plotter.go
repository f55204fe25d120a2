package spline

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/tphakala/go-natural-spline/internal/engine"
	"github.com/tphakala/go-natural-spline/internal/pipeline"
	"github.com/tphakala/go-natural-spline/internal/points"
)

// Plotter owns a control point set and keeps the natural cubic spline through
// it, and its raster image, up to date.
//
// Every edit rebuilds the spline and redraws the whole buffer before it
// returns. Edits are serialized; queries may run concurrently with each other
// and always see a complete snapshot, never one that is being rebuilt.
type Plotter struct {
	config   Config
	pipeline *pipeline.Pipeline
	set      *points.Set

	mu   sync.RWMutex
	snap *pipeline.Snapshot
}

// Query is the result of evaluating the spline at one abscissa.
type Query struct {
	X      float64
	Value  float64
	First  float64
	Second float64

	// MarkerX and MarkerY locate the top-left corner of a MarkerRadius
	// circle centered on (X, Value), in buffer coordinates.
	MarkerX float64
	MarkerY float64
}

// Stats summarizes the current curve over its knot range.
type Stats struct {
	engine.Summary

	// Samples is the number of evenly spaced abscissas Min, Max and Mean
	// were taken over.
	Samples int
}

// New creates a plotter with an empty point set.
func New(config *Config) (*Plotter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.Transform == (Transform{}) {
		cfg.Transform = IdentityTransform()
	}

	pl, err := buildPipeline(&cfg)
	if err != nil {
		return nil, err
	}

	p := &Plotter{
		config:   cfg,
		pipeline: pl,
		set:      points.NewSet(),
	}

	snap, err := pl.Run(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to render empty plot: %w", err)
	}
	p.snap = snap

	return p, nil
}

// Config returns the plotter configuration.
func (p *Plotter) Config() Config {
	return p.config
}

// Toggle edits the point set at a buffer location, y counted down from the
// top row. The location is mapped to math space through the configured
// Transform (with the identity, y = Height - screenY); existing points hit by
// it are removed, otherwise it is inserted.
func (p *Plotter) Toggle(screenX, screenY float64) Change {
	x, y := p.config.Transform.Inverse(screenX, screenY, p.config.Height)
	return p.TogglePoint(ControlPoint{X: x, Y: y})
}

// TogglePoint edits the point set at a math-space location. See Toggle.
func (p *Plotter) TogglePoint(loc ControlPoint) Change {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.set.ToggleAt(loc, p.hitRadius())
	if c.Modified() {
		p.rebuild(c)
	}
	return c
}

// Reset removes every point and clears the buffer.
func (p *Plotter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := p.set.Len()
	p.set.Reset()
	p.rebuild(Change{Kind: Removed, Count: n})
}

// hitRadius converts the configured radius from pixels to spline x units.
func (p *Plotter) hitRadius() float64 {
	return p.config.HitRadius * math.Abs(p.config.Transform.ScaleX)
}

// rebuild runs the pipeline over the current points. Callers hold the write lock.
func (p *Plotter) rebuild(c Change) {
	pts := p.set.Points()

	snap, err := p.pipeline.Run(pts)
	if err != nil {
		// The set keeps points sorted and x-unique, so this is a broken
		// invariant. Show the background only.
		Logger().Warn("spline rebuild failed", "error", err, "points", len(pts))
		snap, err = p.pipeline.Run(nil)
		if err != nil {
			return
		}
		snap.Points = pts
	}
	p.snap = snap

	Logger().Debug("spline rebuilt",
		slog.String("change", c.Kind.String()),
		slog.Int("count", c.Count),
		slog.Int("points", len(snap.Points)),
		slog.Int("segments", len(snap.Segments)),
		slog.Int("drawn", snap.Drawn))
}

// Ready reports whether at least two points exist, so a spline is defined.
func (p *Plotter) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.Ready()
}

// Points returns the control points in ascending x order.
func (p *Plotter) Points() []ControlPoint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]ControlPoint(nil), p.snap.Points...)
}

// Segments returns a copy of the current spline segments, or nil when fewer
// than two points exist.
func (p *Plotter) Segments() []Segment {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.snap.Ready() {
		return nil
	}
	return append([]Segment(nil), p.snap.Segments...)
}

// Query evaluates the spline at x. ok is false when fewer than two points
// exist; the spline is then undefined and nothing is evaluated.
//
// x before the first knot evaluates to zero; past the last knot the last
// segment is extrapolated. Neither is an error.
func (p *Plotter) Query(x float64) (q Query, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.snap.Ready() {
		return Query{}, false
	}

	ev := engine.Evaluate(p.snap.Segments, x)
	mx, my := p.config.Transform.Marker(x, ev.Value, p.config.MarkerRadius, p.config.Height)

	return Query{
		X:       x,
		Value:   ev.Value,
		First:   ev.First,
		Second:  ev.Second,
		MarkerX: mx,
		MarkerY: my,
	}, true
}

// Image returns a copy of the rendered buffer.
func (p *Plotter) Image() *image.RGBA {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap.Buffer.Image()
}

// WritePNG encodes the rendered buffer as PNG.
func (p *Plotter) WritePNG(w io.Writer) error {
	p.mu.RLock()
	buf := p.snap.Buffer
	p.mu.RUnlock()

	// Snapshots are immutable, so encoding can proceed without the lock.
	return buf.WritePNG(w)
}

// Stats summarizes the curve between the first and last knot, sampling one
// abscissa per pixel column. ok is false when fewer than two points exist.
func (p *Plotter) Stats() (Stats, bool) {
	p.mu.RLock()
	snap := p.snap
	p.mu.RUnlock()

	_, hi, ok := snap.Domain()
	if !ok {
		return Stats{}, false
	}

	n := p.config.Width
	return Stats{
		Summary: engine.Summarize(snap.Segments, hi, n),
		Samples: n,
	}, true
}
