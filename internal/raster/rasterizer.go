package raster

import (
	"image/color"

	"github.com/tphakala/go-natural-spline/internal/engine"
)

// Default colors.
var (
	// Background is opaque black.
	Background = color.RGBA{A: 0xFF}

	// Trace is white.
	Trace = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Rasterizer draws a one pixel wide trace of a spline, one sample per
// column, without joining consecutive samples.
type Rasterizer struct {
	Background color.RGBA
	Trace      color.RGBA
	Transform  Transform
}

// NewRasterizer returns a rasterizer with the default colors and the identity transform.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Background: Background,
		Trace:      Trace,
		Transform:  Identity(),
	}
}

// Clear fills buf with the opaque background color.
func (r *Rasterizer) Clear(buf *PixelBuffer) {
	bg := r.Background
	bg.A = 0xFF
	buf.Fill(bg)
}

// Rasterize clears buf and plots segs across every pixel column. It returns
// the number of columns drawn. A column whose sample maps outside the buffer
// is dropped, never clamped to the edge. An empty segment sequence leaves
// the background only.
func (r *Rasterizer) Rasterize(segs []engine.Segment, buf *PixelBuffer) int {
	r.Clear(buf)
	if len(segs) == 0 {
		return 0
	}

	w, h := buf.Width(), buf.Height()
	drawn := 0
	for i := 0; i < w; i++ {
		y := engine.Value(segs, r.Transform.ColumnToX(i))
		offset, ok := r.Transform.Offset(i, y, w, h)
		if !ok {
			continue
		}
		buf.SetRGB(offset, r.Trace)
		drawn++
	}
	return drawn
}
