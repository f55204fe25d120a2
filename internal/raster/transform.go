package raster

import "math"

// Transform maps between the spline's continuous space and buffer indices.
//
// Pixel column i is queried at x = OriginX + i*ScaleX. A spline value y lands
// on row H - trunc((y-OriginY)/ScaleY), so larger values are drawn higher.
// The zero Transform is not usable; start from Identity.
type Transform struct {
	OriginX float64
	OriginY float64
	ScaleX  float64
	ScaleY  float64
}

// Identity identifies pixel columns with spline x and spline y with pixel
// rows counted up from the bottom edge.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// ColumnToX returns the spline abscissa sampled for pixel column i.
func (t Transform) ColumnToX(i int) float64 {
	return t.OriginX + float64(i)*t.ScaleX
}

// Offset maps a sample in column i with value y to a flat byte offset into a
// width x height buffer. The value is truncated toward zero, so with the
// identity transform the offset is 4*(width*(height-int(y)) + i).
//
// ok is false when the sample falls outside the buffer or y is not finite.
func (t Transform) Offset(i int, y float64, width, height int) (offset int, ok bool) {
	if i < 0 || i >= width {
		return 0, false
	}

	v := math.Trunc((y - t.OriginY) / t.ScaleY)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	row := float64(height) - v
	if row < 0 || row >= float64(height) {
		return 0, false
	}

	return bytesPerPixel * (width*int(row) + i), true
}

// Inverse maps a buffer location back to spline space. It undoes the point
// placement of Marker: with r = 0, Marker(Inverse(sx, sy, h)) is (sx, sy).
// With the identity transform this is (sx, height - sy).
func (t Transform) Inverse(sx, sy float64, height int) (x, y float64) {
	return t.OriginX + sx*t.ScaleX, t.OriginY + (float64(height)-sy)*t.ScaleY
}

// Marker returns the top-left corner of a square of half-size r centered on
// the spline point (x, y) in buffer coordinates. With the identity
// transform this is (x - r, height - y - r).
func (t Transform) Marker(x, y, r float64, height int) (mx, my float64) {
	px := (x - t.OriginX) / t.ScaleX
	py := float64(height) - (y-t.OriginY)/t.ScaleY
	return px - r, py - r
}
