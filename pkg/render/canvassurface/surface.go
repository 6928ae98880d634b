// pkg/render/canvassurface/surface.go
package canvassurface

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"

	"gravity-stars/pkg/render"
)

var _ render.Surface = (*Surface)(nil)

// Surface draws on a tfriedel6 canvas, which has real shadow blur like the
// browser 2D context. The canvas belongs to its window, so Resize and
// Release only track whether painting is allowed.
type Surface struct {
	cv     *canvas.Canvas
	active bool
}

func New(cv *canvas.Canvas) *Surface {
	return &Surface{cv: cv}
}

func (s *Surface) Resize(width, height int) {
	s.active = width > 0 && height > 0
}

func (s *Surface) Clear() {
	if !s.active {
		return
	}
	s.cv.ClearRect(0, 0, float64(s.cv.Width()), float64(s.cv.Height()))
}

func (s *Surface) FillCircle(x, y, radius float32, c color.NRGBA) {
	if !s.active {
		return
	}
	s.cv.SetFillStyle(hexRGBA(c))
	s.disc(x, y, radius)
}

func (s *Surface) Glow(x, y, radius, blur float32, c color.NRGBA) {
	if !s.active {
		return
	}
	style := hexRGBA(c)
	s.cv.Save()
	s.cv.SetFillStyle(style)
	s.cv.SetShadowColor(style)
	s.cv.SetShadowBlur(float64(blur))
	s.disc(x, y, radius)
	s.cv.Restore()
}

func (s *Surface) Release() {
	s.active = false
}

func (s *Surface) disc(x, y, radius float32) {
	s.cv.BeginPath()
	s.cv.Arc(float64(x), float64(y), float64(radius), 0, math.Pi*2, false)
	s.cv.Fill()
}

// hexRGBA formats c as "#RRGGBBAA", the form canvas styles accept.
func hexRGBA(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
