// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// T is the part of testing.TB the helpers use.
type T interface {
	assert.TestingT
	Helper()
}

// KnotTolerance bounds the interpolation error at knots.
const KnotTolerance = 1e-7

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is greater than its
// predecessor, i.e. the slice is sorted and free of duplicates.
func AssertStrictlyIncreasing(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			return assert.Fail(t,
				fmt.Sprintf("not strictly increasing: s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t,
			fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
				relError, tolerance, expected, actual),
			msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t,
			fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}
