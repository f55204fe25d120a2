// Package pipeline implements the rebuild pipeline that turns a point set
// into an immutable snapshot: spline segments plus a rendered pixel buffer.
// Every point edit runs the whole pipeline; there is no incremental update.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-natural-spline/internal/engine"
	"github.com/tphakala/go-natural-spline/internal/points"
	"github.com/tphakala/go-natural-spline/internal/raster"
)

// Snapshot is the output of one rebuild. It is never modified after Run
// returns, so readers may share it freely.
type Snapshot struct {
	// Points is the sorted point set the snapshot was built from.
	Points []points.ControlPoint

	// Segments is nil when fewer than two points exist.
	Segments []engine.Segment

	// Buffer holds the rendered trace, or the background only.
	Buffer *raster.PixelBuffer

	// Drawn is the number of pixel columns the trace occupies.
	Drawn int
}

// Ready reports whether the snapshot holds a spline that may be evaluated.
func (s *Snapshot) Ready() bool {
	return len(s.Segments) > 0
}

// Domain returns the first and last knot abscissas. ok is false when the
// snapshot is not Ready.
func (s *Snapshot) Domain() (lo, hi float64, ok bool) {
	if !s.Ready() {
		return 0, 0, false
	}
	return s.Points[0].X, s.Points[len(s.Points)-1].X, true
}

// Stage is a single step of the rebuild pipeline.
type Stage interface {
	// Name identifies the stage in logs.
	Name() string

	// Apply fills in its part of the snapshot.
	Apply(snap *Snapshot) error
}

// Pipeline runs its stages in order over a fresh snapshot.
type Pipeline struct {
	stages []Stage
}

// New builds the standard pipeline: spline construction followed by
// rasterization into a width x height buffer.
func New(r *raster.Rasterizer, width, height int) (*Pipeline, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size: %dx%d", width, height)
	}
	if r == nil {
		return nil, errors.New("rasterizer is nil")
	}

	p := &Pipeline{stages: make([]Stage, 0, defaultStageCapacity)}
	p.stages = append(p.stages,
		buildStage{},
		&renderStage{rasterizer: r, width: width, height: height},
	)
	return p, nil
}

// Run rebuilds from pts, which must be sorted ascending by X and x-unique,
// as a points.Set guarantees. pts is copied.
func (p *Pipeline) Run(pts []points.ControlPoint) (*Snapshot, error) {
	snap := &Snapshot{Points: append([]points.ControlPoint(nil), pts...)}

	for _, stage := range p.stages {
		if err := stage.Apply(snap); err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}
	return snap, nil
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// buildStage solves the spline. With fewer than two points it leaves
// Segments nil; that is a valid, degenerate state rather than an error.
type buildStage struct{}

func (buildStage) Name() string { return stageNameBuild }

func (buildStage) Apply(snap *Snapshot) error {
	if len(snap.Points) < 2 {
		snap.Segments = nil
		return nil
	}

	xs, ys := points.Split(snap.Points)
	segs, err := engine.Build(xs, ys)
	if err != nil {
		return err
	}
	snap.Segments = segs
	return nil
}

// renderStage rasterizes into a buffer owned by the snapshot.
type renderStage struct {
	rasterizer    *raster.Rasterizer
	width, height int
}

func (*renderStage) Name() string { return stageNameRender }

func (s *renderStage) Apply(snap *Snapshot) error {
	buf := raster.NewPixelBuffer(s.width, s.height)
	snap.Drawn = s.rasterizer.Rasterize(snap.Segments, buf)
	snap.Buffer = buf
	return nil
}
