// Package raster turns a spline into a fixed-size RGBA pixel buffer.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// bytesPerPixel is the size of one R,G,B,A sample.
const bytesPerPixel = 4

// PixelBuffer is a fixed-size W x H RGBA grid. Row 0 is the top row and
// samples are stored row-major, 4 bytes per pixel, which is the layout of
// image.RGBA. The dimensions never change after construction.
type PixelBuffer struct {
	img *image.RGBA
}

// NewPixelBuffer creates a transparent black buffer. width and height must be positive.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.img.Rect.Dy()
}

// pix returns the raw RGBA samples.
func (b *PixelBuffer) pix() []uint8 {
	return b.img.Pix
}

// Fill sets every pixel, alpha included, to c.
func (b *PixelBuffer) Fill(c color.RGBA) {
	pix := b.pix()
	for i := 0; i < len(pix); i += bytesPerPixel {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// SetRGB writes the color channels of the pixel at a flat byte offset and
// leaves its alpha untouched. The offset must be a valid pixel start.
func (b *PixelBuffer) SetRGB(offset int, c color.RGBA) {
	pix := b.pix()
	pix[offset+0] = c.R
	pix[offset+1] = c.G
	pix[offset+2] = c.B
}

// RGBAAt returns the pixel at column x, row y.
func (b *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}

// Image returns a copy of the buffer as an image.RGBA.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(b.img.Rect)
	copy(img.Pix, b.img.Pix)
	return img
}

// WritePNG encodes the buffer as PNG.
func (b *PixelBuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, b.img)
}
