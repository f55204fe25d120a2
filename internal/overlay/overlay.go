// Package overlay draws presentation marks over a rendered spline: control
// point circles, the query pointer and status text.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic Bezier control points so four arcs approximate a circle.
const kappa = 0.5522847498

// lineHeight is the vertical advance between status lines, in pixels.
const lineHeight = 16

// Default colors, matching the interactive viewer.
var (
	PointColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	PointerColor = color.RGBA{G: 0xFF, A: 0xFF}
	TextColor    = color.RGBA{G: 0xFF, A: 0xFF}
)

// Circle fills a circle of radius r centered on (cx, cy) in dst coordinates.
// Parts outside dst are clipped.
func Circle(dst draw.Image, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}

	// The path is rasterized into a mask covering only the circle's bounding
	// box, so it never leaves the rasterizer's own bounds.
	size := int(math.Ceil(2*r)) + 2
	origin := image.Pt(int(math.Floor(cx-r))-1, int(math.Floor(cy-r))-1)
	area := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
	clipped := area.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}

	x, y := float32(cx-float64(origin.X)), float32(cy-float64(origin.Y))
	rr := float32(r)
	k := rr * kappa

	z := vector.NewRasterizer(size, size)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(dst, clipped, image.NewUniform(c), image.Point{}, mask, clipped.Min.Sub(origin), draw.Over)
}

// Text draws lines of text with their top-left corner at (x, y).
func Text(dst draw.Image, x, y int, lines []string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(x, y+ascent+i*lineHeight)
		d.DrawString(line)
	}
}
