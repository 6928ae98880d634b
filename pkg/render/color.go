// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// WithAlpha returns c with its alpha set to a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if math.IsNaN(a) || a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}

// Darken scales the colour channels by k, keeping alpha.
func Darken(c color.NRGBA, k float64) color.NRGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.NRGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
