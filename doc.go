// Package spline maintains a natural cubic spline through an editable set of
// 2-D control points and renders it into a fixed-size RGBA pixel buffer.
//
// # Features
//
//   - Natural cubic spline construction via a tridiagonal (Thomas) solve
//   - Evaluation of value, first and second derivative at any x
//   - Toggle-style point editing: a click near an existing point removes it,
//     anywhere else inserts a new one
//   - Deterministic rasterization onto a W x H RGBA buffer, one sample per column
//   - Curve statistics (range, mean, bending energy) with optional SIMD
//     acceleration via github.com/tphakala/simd
//
// # Quick Start
//
// For one-shot interpolation:
//
//	segs, err := spline.Interpolate([]spline.ControlPoint{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ev := spline.Evaluate(segs, 0.5) // ev.Value, ev.First, ev.Second
//
// For interactive use, a Plotter owns the points and keeps the curve and its
// image current:
//
//	cfg := spline.DefaultConfig()
//	p, err := spline.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p.Toggle(100, 700) // buffer coordinates, y counted down from the top
//	p.Toggle(400, 200)
//	p.Toggle(800, 600)
//
//	if q, ok := p.Query(250); ok {
//	    fmt.Println(q.Value, q.First, q.Second)
//	}
//	img := p.Image()
//
// # Edge Cases
//
// Nothing in the package fails on degenerate geometry:
//
//   - With fewer than two points no spline exists. [Plotter.Query] reports
//     ok=false and the image holds the background only.
//   - x before the first knot evaluates to 0 (no segment owns it).
//   - x past the last knot extrapolates the last segment's polynomial.
//   - Curve samples that map outside the buffer are not drawn.
//
// # Coordinate Spaces
//
// Control points and query results live in math space, where y grows
// upward. The buffer is stored top row first. [Plotter.Toggle] takes buffer
// coordinates and maps them through the [Transform]; [Plotter.TogglePoint]
// takes math coordinates. The hit radius is given in pixels either way.
// With the identity [Transform], pixel column i samples the spline at x = i
// and a value y is drawn on row Height - y.
//
// # Thread Safety
//
// A [Plotter] is safe for concurrent use. Edits are serialized and each one
// replaces the spline and image atomically; queries run concurrently with
// each other and never observe a partial rebuild.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records
// for every rebuild.
package spline
