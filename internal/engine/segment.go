// Package engine implements the natural cubic spline: coefficient
// construction, segment lookup and evaluation.
package engine

// Segment is one piece of a piecewise cubic polynomial.
//
// It represents f(t) = A + B*t + C*t^2 + D*t^3 with t = x - X0. A segment is
// valid from X0 up to the X0 of the next segment; the last segment of a
// sequence extends to +Inf.
type Segment struct {
	A, B, C, D float64
	X0         float64
}

// At evaluates the polynomial at x.
func (s Segment) At(x float64) float64 {
	t := x - s.X0
	return ((s.D*t+s.C)*t+s.B)*t + s.A
}

// Slope evaluates the first derivative at x.
func (s Segment) Slope(x float64) float64 {
	t := x - s.X0
	return (cubicDerivFactor*s.D*t+quadDerivFactor*s.C)*t + s.B
}

// Curvature evaluates the second derivative at x.
func (s Segment) Curvature(x float64) float64 {
	t := x - s.X0
	return quadDerivFactor*s.C + cubicSecondDerivFactor*s.D*t
}
