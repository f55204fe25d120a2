// Package simdops provides the SIMD-accelerated float64 kernels used by the
// curve statistics.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Mul multiplies element-wise: dst[i] = a[i] * b[i]
	Mul func(dst, a, b []float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Mul:              f64.Mul,
	Sum:              f64.Sum,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Info describes the instruction set the kernels dispatch to.
func Info() string {
	return cpu.Info()
}
