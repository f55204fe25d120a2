package engine

import (
	"gonum.org/v1/gonum/floats"
)

// SampleUniform evaluates the spline on n evenly spaced abscissas covering
// [lo, hi], both ends included. It returns the abscissas and the values.
// n below 2 is raised to 2.
func SampleUniform(segs []Segment, lo, hi float64, n int) (xs, ys []float64) {
	if n < minSamples {
		n = minSamples
	}

	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = Value(segs, x)
	}
	return xs, ys
}
