// pkg/render/rlsurface/surface.go
package rlsurface

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravity-stars/pkg/render"
)

var (
	_ render.Surface = (*Surface)(nil)
	_ render.Framer  = (*Surface)(nil)
)

// Surface is a raylib render texture. Paint calls must sit between
// BeginFrame and EndFrame.
type Surface struct {
	target rl.RenderTexture2D
	loaded bool
	w, h   int32
}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) Resize(width, height int) {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
	}
	s.w, s.h = int32(width), int32(height)
	s.target = rl.LoadRenderTexture(s.w, s.h)
	s.loaded = true
}

func (s *Surface) BeginFrame() {
	if s.loaded {
		rl.BeginTextureMode(s.target)
	}
}

func (s *Surface) EndFrame() {
	if s.loaded {
		rl.EndTextureMode()
	}
}

func (s *Surface) Clear() {
	if s.loaded {
		rl.ClearBackground(rl.Blank)
	}
}

func (s *Surface) FillCircle(x, y, radius float32, c color.NRGBA) {
	if !s.loaded {
		return
	}
	rl.DrawCircleV(rl.NewVector2(x, y), radius, toRL(c))
}

// Glow draws a radial gradient halo and redraws the disc over it.
func (s *Surface) Glow(x, y, radius, blur float32, c color.NRGBA) {
	if !s.loaded {
		return
	}
	inner := rl.NewColor(c.R, c.G, c.B, c.A/2)
	outer := rl.NewColor(c.R, c.G, c.B, 0)
	rl.DrawCircleGradient(int32(x), int32(y), radius+blur, inner, outer)
	rl.DrawCircleV(rl.NewVector2(x, y), radius, toRL(c))
}

func (s *Surface) Release() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}

// DrawTo blits the texture at (x, y). Render textures are stored upside
// down, hence the negative source height.
func (s *Surface) DrawTo(x, y float32) {
	if !s.loaded {
		return
	}
	src := rl.NewRectangle(0, 0, float32(s.w), -float32(s.h))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(x, y), rl.White)
}

func toRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
