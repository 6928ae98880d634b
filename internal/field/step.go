// internal/field/step.go
package field

import "gravity-stars/pkg/render"

// step applies pointer influence and motion to every particle. The pointer
// is read once per tick whatever the input rate.
func (f *Field) step() {
	px, py := f.pointer.Load()
	w, h := f.viewport.Width, f.viewport.Height
	for i := range f.particles {
		p := &f.particles[i]
		if !f.opts.Interactive || !p.pull(px, py, &f.opts) {
			p.decay()
		}
		p.integrate(w, h)
	}
}

// draw paints the population. Only excited particles get the halo pass.
func (f *Field) draw(s render.Surface) {
	if fr, ok := s.(render.Framer); ok {
		fr.BeginFrame()
		defer fr.EndFrame()
	}
	s.Clear()
	dpr := float32(f.viewport.DPR)
	for _, p := range f.particles {
		c := render.WithAlpha(f.color, p.Alpha())
		x, y, r := float32(p.X)*dpr, float32(p.Y)*dpr, float32(p.Radius)*dpr
		s.FillCircle(x, y, r, c)
		if p.Glowing() {
			s.Glow(x, y, r, float32(p.GlowBlur(f.opts.GlowIntensity)), c)
		}
	}
}
