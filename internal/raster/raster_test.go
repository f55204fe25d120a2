package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-natural-spline/internal/engine"
)

const (
	testW = 64
	testH = 48
)

func build(t *testing.T, xs, ys []float64) []engine.Segment {
	t.Helper()
	segs, err := engine.Build(xs, ys)
	require.NoError(t, err)
	return segs
}

// traced returns the columns whose pixel at row y was painted with the trace color.
func traced(buf *PixelBuffer, tr color.RGBA) map[int]int {
	rows := make(map[int]int)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.RGBAAt(x, y)
			if c.R == tr.R && c.G == tr.G && c.B == tr.B {
				rows[x] = y
			}
		}
	}
	return rows
}

func TestTransform_IdentityOffset(t *testing.T) {
	tr := Identity()

	off, ok := tr.Offset(3, 10, testW, testH)
	require.True(t, ok)
	assert.Equal(t, 4*(testW*(testH-10)+3), off)

	off, ok = tr.Offset(5, 10.9, testW, testH)
	require.True(t, ok)
	assert.Equal(t, 4*(testW*(testH-10)+5), off, "value is truncated toward zero")
}

func TestTransform_InverseUndoesMarker(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"identity", Identity()},
		{"scaled", Transform{ScaleX: 0.1, ScaleY: 0.25}},
		{"shifted and flipped", Transform{OriginX: -40, OriginY: 3, ScaleX: 2, ScaleY: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.tr.Inverse(37, 12, testH)
			mx, my := tt.tr.Marker(x, y, 0, testH)
			assert.InDelta(t, 37.0, mx, 1e-9)
			assert.InDelta(t, 12.0, my, 1e-9)
		})
	}

	x, y := Identity().Inverse(37, 12, testH)
	assert.Equal(t, 37.0, x)
	assert.Equal(t, float64(testH-12), y, "identity flips y only")
}

func TestTransform_OffsetDropsOutOfFrame(t *testing.T) {
	tr := Identity()

	tests := []struct {
		name string
		i    int
		y    float64
	}{
		{"zero value lands below the last row", 0, 0},
		{"fraction truncates to zero", 1, 0.7},
		{"negative value", 2, -5},
		{"above the top row", 3, testH + 1},
		{"NaN", 4, math.NaN()},
		{"+Inf", 5, math.Inf(1)},
		{"-Inf", 6, math.Inf(-1)},
		{"column past the right edge", testW, 10},
		{"negative column", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tr.Offset(tt.i, tt.y, testW, testH)
			assert.False(t, ok)
		})
	}

	off, ok := tr.Offset(testW-1, testH, testW, testH)
	require.True(t, ok, "value H maps to row 0")
	assert.Equal(t, 4*(testW-1), off)

	off, ok = tr.Offset(0, 1, testW, testH)
	require.True(t, ok, "value 1 maps to the last row")
	assert.Equal(t, 4*testW*(testH-1), off)
}

func TestTransform_ScaledOffsetAndColumn(t *testing.T) {
	tr := Transform{OriginX: -1, OriginY: -2, ScaleX: 0.5, ScaleY: 0.25}

	assert.InDelta(t, -1.0, tr.ColumnToX(0), 1e-12)
	assert.InDelta(t, 1.5, tr.ColumnToX(5), 1e-12)

	// (y - OriginY)/ScaleY = (0.5 + 2)/0.25 = 10
	off, ok := tr.Offset(7, 0.5, testW, testH)
	require.True(t, ok)
	assert.Equal(t, 4*(testW*(testH-10)+7), off)
}

func TestTransform_Marker(t *testing.T) {
	mx, my := Identity().Marker(100, 40, 6, 888)
	assert.InDelta(t, 94.0, mx, 1e-12)
	assert.InDelta(t, 888.0-40-6, my, 1e-12)
}

func TestRasterize_EmptySegmentsLeavesBackground(t *testing.T) {
	buf := NewPixelBuffer(testW, testH)
	r := NewRasterizer()

	drawn := r.Rasterize(nil, buf)
	assert.Zero(t, drawn)

	for i := 0; i < len(buf.pix()); i += bytesPerPixel {
		require.Equal(t, []uint8{0, 0, 0, 0xFF}, buf.pix()[i:i+bytesPerPixel], "byte offset %d", i)
	}
}

func TestRasterize_HorizontalLine(t *testing.T) {
	buf := NewPixelBuffer(testW, testH)
	r := NewRasterizer()

	segs := build(t, []float64{0, 20, 63}, []float64{30, 30, 30})
	drawn := r.Rasterize(segs, buf)
	assert.Equal(t, testW, drawn)

	rows := traced(buf, Trace)
	require.Len(t, rows, testW)
	for x, y := range rows {
		assert.Equal(t, testH-30, y, "column %d", x)
	}
}

func TestRasterize_DropsColumnsBeforeFirstKnot(t *testing.T) {
	buf := NewPixelBuffer(testW, testH)
	r := NewRasterizer()

	// Columns 0..9 fall before the first knot and evaluate to 0, which maps
	// below the last row.
	segs := build(t, []float64{10, 40}, []float64{20, 20})
	drawn := r.Rasterize(segs, buf)
	assert.Equal(t, testW-10, drawn)

	rows := traced(buf, Trace)
	for x := 0; x < 10; x++ {
		assert.NotContains(t, rows, x)
	}
}

func TestRasterize_DropsOvershoot(t *testing.T) {
	buf := NewPixelBuffer(testW, testH)
	r := NewRasterizer()

	// A steep line leaves the top of the buffer at column 23.
	segs := build(t, []float64{0, 10}, []float64{1, 21})
	drawn := r.Rasterize(segs, buf)

	rows := traced(buf, Trace)
	assert.Equal(t, len(rows), drawn)
	for x := range rows {
		assert.Less(t, x, 24, "column %d should have been dropped", x)
	}
}

func TestRasterize_KeepsAlphaAndClearsPreviousTrace(t *testing.T) {
	buf := NewPixelBuffer(testW, testH)
	r := NewRasterizer()
	r.Background = color.RGBA{R: 10, G: 20, B: 30, A: 0}
	r.Trace = color.RGBA{R: 200, G: 100, B: 50, A: 7}

	r.Rasterize(build(t, []float64{0, 63}, []float64{10, 10}), buf)
	px := buf.RGBAAt(5, testH-10)
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 0xFF}, px, "alpha stays opaque from the clear")

	r.Rasterize(build(t, []float64{0, 63}, []float64{20, 20}), buf)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}, buf.RGBAAt(5, testH-10), "old trace is cleared")
}

func TestRasterize_Deterministic(t *testing.T) {
	segs := build(t, []float64{0, 15, 30, 50}, []float64{5, 40, 10, 25})

	a := NewPixelBuffer(testW, testH)
	b := NewPixelBuffer(testW, testH)
	NewRasterizer().Rasterize(segs, a)
	NewRasterizer().Rasterize(segs, b)

	assert.Equal(t, a.pix(), b.pix())
}

func TestPixelBuffer_WritePNG(t *testing.T) {
	buf := NewPixelBuffer(8, 6)
	buf.Fill(Background)
	buf.SetRGB(4*(8*2+3), Trace)

	var out bytes.Buffer
	require.NoError(t, buf.WritePNG(&out))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	r, g, b, a := img.At(3, 2).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})
}
