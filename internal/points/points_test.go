package points

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-natural-spline/internal/testutil"
)

const hitRadius = 6

func xsOf(s *Set) []float64 {
	xs, _ := Split(s.Points())
	return xs
}

func TestToggleAt_InsertKeepsOrder(t *testing.T) {
	s := NewSet()
	for _, x := range []float64{300, 100, 500, 200, 400} {
		c := s.ToggleAt(ControlPoint{X: x, Y: x / 2}, hitRadius)
		assert.Equal(t, Change{Kind: Inserted, Count: 1}, c)
	}

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{100, 200, 300, 400, 500}, xsOf(s))

	_, ys := Split(s.Points())
	assert.Equal(t, []float64{50, 100, 150, 200, 250}, ys, "y travels with its x")
}

func TestToggleAt_RemovesHitPoint(t *testing.T) {
	s := NewSet()
	s.ToggleAt(ControlPoint{X: 1.0, Y: 10}, hitRadius)
	s.ToggleAt(ControlPoint{X: 50, Y: 10}, hitRadius)
	require.Equal(t, 2, s.Len())

	c := s.ToggleAt(ControlPoint{X: 1.0, Y: 999}, hitRadius)
	assert.Equal(t, Change{Kind: Removed, Count: 1}, c)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []ControlPoint{{X: 50, Y: 10}}, s.Points())
}

func TestToggleAt_RemovesAllHits(t *testing.T) {
	s := NewSet()
	// Placed far apart, then a click between two of them hits both.
	s.ToggleAt(ControlPoint{X: 100, Y: 1}, hitRadius)
	s.ToggleAt(ControlPoint{X: 110, Y: 2}, hitRadius)
	s.ToggleAt(ControlPoint{X: 200, Y: 3}, hitRadius)

	c := s.ToggleAt(ControlPoint{X: 105, Y: 0}, hitRadius)
	assert.Equal(t, Change{Kind: Removed, Count: 2}, c)
	assert.Equal(t, []ControlPoint{{X: 200, Y: 3}}, s.Points())
}

func TestHit_HalfOpenWindow(t *testing.T) {
	loc := ControlPoint{X: 100}

	assert.True(t, Hit(ControlPoint{X: 94}, loc, hitRadius), "lower bound is inclusive")
	assert.False(t, Hit(ControlPoint{X: 106}, loc, hitRadius), "upper bound is exclusive")
	assert.True(t, Hit(ControlPoint{X: 105.999}, loc, hitRadius))
	assert.False(t, Hit(ControlPoint{X: 93.999}, loc, hitRadius))
	assert.True(t, Hit(ControlPoint{X: 100}, loc, 0), "exact x always hits")
}

func TestToggleAt_Symmetry(t *testing.T) {
	s := NewSet()
	for _, x := range []float64{10, 80, 200} {
		s.ToggleAt(ControlPoint{X: x, Y: x}, hitRadius)
	}
	before := s.Points()

	loc := ControlPoint{X: 140, Y: 33}
	require.Equal(t, Inserted, s.ToggleAt(loc, hitRadius).Kind)
	c := s.ToggleAt(loc, hitRadius)

	assert.Equal(t, Change{Kind: Removed, Count: 1}, c)
	assert.Equal(t, before, s.Points())
}

func TestToggleAt_ZeroRadiusKeepsUniqueX(t *testing.T) {
	s := NewSet()
	s.ToggleAt(ControlPoint{X: 5, Y: 5}, 0)
	c := s.ToggleAt(ControlPoint{X: 5, Y: 7}, 0)

	assert.Equal(t, Removed, c.Kind)
	assert.Zero(t, s.Len())
}

func TestToggleAt_IgnoresNonFinite(t *testing.T) {
	s := NewSet()
	for _, loc := range []ControlPoint{
		{X: math.NaN(), Y: 1},
		{X: 1, Y: math.Inf(1)},
		{X: math.Inf(-1), Y: 1},
	} {
		c := s.ToggleAt(loc, hitRadius)
		assert.Equal(t, Ignored, c.Kind)
		assert.False(t, c.Modified())
	}
	assert.Zero(t, s.Len())
}

func TestToggleAt_EmptyAfterRemovalIsValid(t *testing.T) {
	s := NewSet()
	s.ToggleAt(ControlPoint{X: 5, Y: 5}, hitRadius)
	s.ToggleAt(ControlPoint{X: 5, Y: 5}, hitRadius)

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Points())
}

func TestToggleAt_RandomSequencesStaySortedAndUnique(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 43))
	s := NewSet()

	for i := range 2000 {
		loc := ControlPoint{X: math.Floor(rng.Float64() * 888), Y: rng.Float64() * 888}
		before := s.Len()
		c := s.ToggleAt(loc, hitRadius)

		switch c.Kind {
		case Inserted:
			assert.Equal(t, before+1, s.Len(), "step %d", i)
		case Removed:
			assert.Equal(t, before-c.Count, s.Len(), "step %d", i)
			assert.Positive(t, c.Count, "step %d", i)
		default:
			t.Fatalf("step %d: unexpected change %v", i, c.Kind)
		}

		if !testutil.AssertStrictlyIncreasing(t, xsOf(s), "step %d", i) {
			return
		}
	}
}

func TestPoints_ReturnsCopy(t *testing.T) {
	s := NewSet()
	s.ToggleAt(ControlPoint{X: 1, Y: 1}, hitRadius)

	view := s.Points()
	view[0].X = 99

	assert.Equal(t, 1.0, s.Points()[0].X)
}

func TestReset(t *testing.T) {
	s := NewSet()
	s.ToggleAt(ControlPoint{X: 1, Y: 1}, hitRadius)
	s.ToggleAt(ControlPoint{X: 100, Y: 1}, hitRadius)

	s.Reset()
	assert.Zero(t, s.Len())
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "inserted", Inserted.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "ignored", Ignored.String())
	assert.Equal(t, "unknown", ChangeKind(42).String())
}
