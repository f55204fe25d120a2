package overlay

import (
	"fmt"
	"image/draw"

	spline "github.com/tphakala/go-natural-spline"
)

// Point is a mark center in buffer coordinates.
type Point struct {
	X, Y float64
}

// Scene collects the marks drawn over one rendered frame.
type Scene struct {
	// Points are the control point centers.
	Points []Point

	// Radius is the circle radius used for points and the pointer.
	Radius float64

	// Pointer marks the last queried curve point, if any.
	Pointer *Point

	// Lines are drawn top-left, one per row.
	Lines []string
}

// SceneFor builds the marks for p's current points and, when q is not nil,
// the pointer and readout for that query.
func SceneFor(p *spline.Plotter, q *spline.Query) Scene {
	cfg := p.Config()
	r := cfg.MarkerRadius

	pts := p.Points()
	s := Scene{
		Points: make([]Point, len(pts)),
		Radius: r,
	}
	for i, cp := range pts {
		mx, my := cfg.Transform.Marker(cp.X, cp.Y, r, cfg.Height)
		s.Points[i] = Point{X: mx + r, Y: my + r}
	}

	if q != nil {
		s.Pointer = &Point{X: q.MarkerX + r, Y: q.MarkerY + r}
		s.Lines = QueryLines(*q)
	}
	return s
}

// QueryLines formats a query result as value and derivative readouts.
func QueryLines(q spline.Query) []string {
	return []string{
		fmt.Sprintf("f(%f) = %f", q.X, q.Value),
		fmt.Sprintf("f'(%f) = %f", q.X, q.First),
		fmt.Sprintf("f''(%f) = %f", q.X, q.Second),
	}
}

// Draw renders s onto dst: point circles, then the pointer, then the text.
func Draw(dst draw.Image, s Scene) {
	for _, pt := range s.Points {
		Circle(dst, pt.X, pt.Y, s.Radius, PointColor)
	}
	if s.Pointer != nil {
		Circle(dst, s.Pointer.X, s.Pointer.Y, s.Radius, PointerColor)
	}
	if len(s.Lines) > 0 {
		Text(dst, 0, 0, s.Lines, TextColor)
	}
}
