package outboard

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Color is an 8-bit-per-channel RGBA color value. It is immutable after
// construction and passed by value; there is no attribute storage or shared
// state behind it.
type Color struct {
	R, G, B, A uint8
}

// NewColor builds a Color from its four channel values.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Std converts the color to the standard library color.Color interface.
// The channels are non-premultiplied.
func (c Color) Std() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// rgba converts to the drawing library's normalized [0, 1] color type.
func (c Color) rgba() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
