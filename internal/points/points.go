// Package points maintains the ordered, x-unique set of control points a
// spline is built from.
package points

import (
	"cmp"
	"math"
	"slices"
)

// ControlPoint is a knot in math space (y grows upward).
type ControlPoint struct {
	X float64
	Y float64
}

// ChangeKind tells whether a toggle inserted or removed points.
type ChangeKind int

const (
	// Inserted means a new point was added.
	Inserted ChangeKind = iota

	// Removed means one or more existing points were hit and removed.
	Removed

	// Ignored means the location was not a finite coordinate; nothing changed.
	Ignored
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Change reports the outcome of a toggle. Every insertion or removal
// invalidates the spline built from the previous state.
type Change struct {
	Kind  ChangeKind
	Count int // points inserted or removed
}

// Modified reports whether the set changed.
func (c Change) Modified() bool {
	return c.Count > 0
}

// Set is an ordered collection of control points, sorted ascending by X with
// no two points sharing an X value. The zero value is an empty set.
//
// Set is not safe for concurrent use; its owner serializes access.
type Set struct {
	pts []ControlPoint
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Hit reports whether p lies in the hit window of loc: loc.X-r <= p.X < loc.X+r.
// A point at exactly loc.X is always hit, which keeps X values unique even
// for a zero radius.
func Hit(p, loc ControlPoint, r float64) bool {
	return p.X == loc.X || (p.X >= loc.X-r && p.X < loc.X+r)
}

// ToggleAt removes every point whose X is in the hit window around loc.X.
// If nothing is hit, loc is inserted and the set is re-sorted by X.
//
// Locations with a NaN or infinite coordinate are ignored.
//
// The scan is linear, which is fine for interactively placed points.
func (s *Set) ToggleAt(loc ControlPoint, hitRadius float64) Change {
	if !finite(loc.X) || !finite(loc.Y) {
		return Change{Kind: Ignored}
	}

	kept := s.pts[:0]
	removed := 0
	for _, p := range s.pts {
		if Hit(p, loc, hitRadius) {
			removed++
			continue
		}
		kept = append(kept, p)
	}

	if removed > 0 {
		clear(s.pts[len(kept):])
		s.pts = kept
		return Change{Kind: Removed, Count: removed}
	}

	s.pts = append(s.pts, loc)
	slices.SortStableFunc(s.pts, func(a, b ControlPoint) int {
		return cmp.Compare(a.X, b.X)
	})
	return Change{Kind: Inserted, Count: 1}
}

// Reset removes all points.
func (s *Set) Reset() {
	s.pts = nil
}

// Len returns the number of points.
func (s *Set) Len() int {
	return len(s.pts)
}

// Points returns a copy of the points in ascending X order.
func (s *Set) Points() []ControlPoint {
	return slices.Clone(s.pts)
}

// Split returns the x and y values of pts as parallel slices, the form the
// spline engine consumes.
func Split(pts []ControlPoint) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
