package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-natural-spline/internal/simdops"
)

// Summary describes a spline over its knot range.
type Summary struct {
	// Min, Max and Mean are taken over the uniform samples.
	Min  float64
	Max  float64
	Mean float64

	// BendingEnergy is the integral of f''(x)^2 from the first to the last knot.
	// It is exact: f'' is linear on each segment.
	BendingEnergy float64
}

// Summarize samples the spline at n points across [segs[0].X0, end] and
// computes its bending energy. end is the abscissa of the last knot, which
// the segment sequence does not carry. segs must not be empty.
func Summarize(segs []Segment, end float64, n int) Summary {
	ops := simdops.Float64Ops()

	_, ys := SampleUniform(segs, segs[0].X0, end, n)

	return Summary{
		Min:           floats.Min(ys),
		Max:           floats.Max(ys),
		Mean:          ops.Sum(ys) / float64(len(ys)),
		BendingEnergy: bendingEnergy(ops, segs, end),
	}
}

// bendingEnergy integrates f''^2 segment by segment. With p0 and p1 the
// second derivative at both ends of a segment of width h,
// the integral is h/3 * (p0^2 + p0*p1 + p1^2).
func bendingEnergy(ops *simdops.Ops, segs []Segment, end float64) float64 {
	n := len(segs)
	w := make([]float64, n)
	p0 := make([]float64, n)
	p1 := make([]float64, n)

	for j, s := range segs {
		right := end
		if j+1 < n {
			right = segs[j+1].X0
		}
		w[j] = right - s.X0
		p0[j] = s.Curvature(s.X0)
		p1[j] = s.Curvature(right)
	}

	wp0 := make([]float64, n)
	wp1 := make([]float64, n)
	ops.Mul(wp0, w, p0)
	ops.Mul(wp1, w, p1)

	sum := ops.DotProductUnsafe(wp0, p0) + ops.DotProductUnsafe(wp0, p1) + ops.DotProductUnsafe(wp1, p1)
	return sum / coeffDivisor
}
