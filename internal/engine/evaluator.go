package engine

import "sort"

// Evaluation holds the spline value and its first two derivatives at one x.
type Evaluation struct {
	Value  float64
	First  float64
	Second float64
}

// Locate returns the active segment for x: the last segment whose X0 <= x.
//
// Past the last X0 the last segment is returned, so evaluation extrapolates
// its polynomial. When x lies before the first X0 (or segs is empty) no
// segment qualifies; Locate then returns the zero Segment and false, which
// evaluates to 0 with zero derivatives.
//
// The search is binary; it is observably identical to scanning segments in
// order and keeping the most recent one with X0 <= x.
func Locate(segs []Segment, x float64) (Segment, bool) {
	// First index whose X0 is strictly greater than x.
	i := sort.Search(len(segs), func(i int) bool { return segs[i].X0 > x })
	if i == 0 {
		return Segment{}, false
	}
	return segs[i-1], true
}

// Value evaluates the spline at x.
func Value(segs []Segment, x float64) float64 {
	s, _ := Locate(segs, x)
	return s.At(x)
}

// FirstDerivative evaluates f'(x).
func FirstDerivative(segs []Segment, x float64) float64 {
	s, _ := Locate(segs, x)
	return s.Slope(x)
}

// SecondDerivative evaluates f''(x).
func SecondDerivative(segs []Segment, x float64) float64 {
	s, _ := Locate(segs, x)
	return s.Curvature(x)
}

// Evaluate returns value and derivatives at x with a single lookup.
func Evaluate(segs []Segment, x float64) Evaluation {
	s, _ := Locate(segs, x)
	return Evaluation{
		Value:  s.At(x),
		First:  s.Slope(x),
		Second: s.Curvature(x),
	}
}
