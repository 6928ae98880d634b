// pkg/render/ebitensurface/surface.go
package ebitensurface

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gravity-stars/pkg/render"
)

const glowSpriteSize = 64

var _ render.Surface = (*Surface)(nil)

// Surface paints into an offscreen ebiten image that the host composites
// onto the screen in Draw.
type Surface struct {
	img  *ebiten.Image
	glow *ebiten.Image
}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) Resize(width, height int) {
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			s.img.Clear()
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *Surface) FillCircle(x, y, radius float32, c color.NRGBA) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, x, y, radius, c, true)
}

// Glow stretches a soft white sprite over the halo, tinted to c, then puts
// the disc back on top so the halo sits behind it.
func (s *Surface) Glow(x, y, radius, blur float32, c color.NRGBA) {
	if s.img == nil {
		return
	}
	if s.glow == nil {
		s.glow = newGlowSprite(glowSpriteSize)
	}
	outer := float64(radius + blur)
	scale := 2 * outer / glowSpriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x)-outer, float64(y)-outer)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.glow, op)
	vector.DrawFilledCircle(s.img, x, y, radius, c, true)
}

func (s *Surface) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	if s.glow != nil {
		s.glow.Deallocate()
		s.glow = nil
	}
}

// DrawTo composites the surface at (x, y) in screen pixels, stretched by
// scale.
func (s *Surface) DrawTo(screen *ebiten.Image, x, y, scale float64) {
	if s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = compositeGeoM(x, y, scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.img, op)
}

func compositeGeoM(x, y, scale float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(scale, scale)
	m.Translate(x, y)
	return m
}

// newGlowSprite renders a white disc whose alpha falls off quadratically
// from the centre. Pixels are premultiplied.
func newGlowSprite(size int) *ebiten.Image {
	pix := make([]byte, 4*size*size)
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			d := math.Hypot(float64(px)+0.5-half, float64(py)+0.5-half) / half
			if d >= 1 {
				continue
			}
			a := byte((1 - d) * (1 - d) * 255)
			i := 4 * (py*size + px)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = a, a, a, a
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}
