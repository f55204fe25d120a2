package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestCircle_FillsCenterNotCorners(t *testing.T) {
	img := blank(40, 40)
	Circle(img, 20, 20, 6, PointColor)

	assert.GreaterOrEqual(t, img.RGBAAt(20, 20).R, uint8(0xFE))
	assert.GreaterOrEqual(t, img.RGBAAt(22, 18).R, uint8(0xFE))
	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(27, 27), "outside the radius")
}

func TestCircle_ClipsAtEdges(t *testing.T) {
	img := blank(10, 10)
	assert.NotPanics(t, func() {
		Circle(img, 0, 0, 6, PointerColor)
		Circle(img, -50, -50, 6, PointerColor)
		Circle(img, 9, 9, 0, PointerColor)
	})
	assert.GreaterOrEqual(t, img.RGBAAt(1, 1).G, uint8(0xFE))
	assert.Zero(t, img.RGBAAt(1, 1).R)
}

func TestText_DrawsSomething(t *testing.T) {
	img := blank(120, 40)
	Text(img, 0, 0, []string{"f(1) = 2", "f'(1) = 0"}, TextColor)

	painted := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y).G > 0 {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
}
