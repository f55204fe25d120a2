package engine

import (
	"errors"
	"fmt"
)

// Errors returned by Build. Callers that keep their points in a points.Set
// never trigger them; they guard direct use of the engine.
var (
	// ErrTooFewPoints indicates fewer than two knots were supplied.
	ErrTooFewPoints = errors.New("at least two points are required")

	// ErrLengthMismatch indicates xs and ys differ in length.
	ErrLengthMismatch = errors.New("x and y slices differ in length")

	// ErrNotIncreasing indicates xs is not strictly increasing.
	ErrNotIncreasing = errors.New("x values must be strictly increasing")
)

// Build computes the natural cubic spline through the knots (xs[i], ys[i]).
//
// xs must be strictly increasing. For n+1 knots it returns n segments in
// ascending X0 order. The second derivative is zero at both end knots.
//
// The tridiagonal system for the quadratic coefficients is solved with
// forward elimination and back substitution (Thomas algorithm). The result
// is deterministic for a given input.
func Build(xs, ys []float64) ([]Segment, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < minKnots {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}

	n := len(xs) - 1

	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = xs[i+1] - xs[i]
		// Written as a negated comparison so NaN is rejected too.
		if !(h[i] > 0) {
			return nil, fmt.Errorf("%w: x[%d]=%g, x[%d]=%g", ErrNotIncreasing, i, xs[i], i+1, xs[i+1])
		}
	}

	a := ys

	alpha := make([]float64, n)
	for i := 1; i < n; i++ {
		alpha[i] = alphaFactor/h[i]*(a[i+1]-a[i]) - alphaFactor/h[i-1]*(a[i]-a[i-1])
	}

	// Forward elimination. l[0]=1, mu[0]=0, z[0]=0 encode c_0 = 0.
	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]float64, n+1)
	l[0] = 1
	for i := 1; i < n; i++ {
		l[i] = diagonalFactor*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n] = 1
	z[n] = 0

	// Back substitution with c_n = 0.
	c := make([]float64, n+1)
	segments := make([]Segment, n)
	for j := n - 1; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		segments[j] = Segment{
			A:  a[j],
			B:  (a[j+1]-a[j])/h[j] - h[j]*(c[j+1]+diagonalFactor*c[j])/coeffDivisor,
			C:  c[j],
			D:  (c[j+1] - c[j]) / (coeffDivisor * h[j]),
			X0: xs[j],
		}
	}

	return segments, nil
}
