// internal/field/particle.go
package field

import (
	"math"

	"gravity-stars/internal/config"
	"gravity-stars/internal/utils"
)

// Particle is one star. Position and velocity are in container pixels;
// velocity is a per-tick displacement.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Radius      float64
	BaseOpacity float64
	Glow        float64 // >= 1, raised near the pointer and eased back
}

// pull applies the pointer impulse and reports whether the particle was in
// range. A particle sitting exactly on the pointer is left alone.
func (p *Particle) pull(px, py float64, o *config.Field) bool {
	dx := px - p.X
	dy := py - p.Y
	distSq := dx*dx + dy*dy
	if distSq == 0 || distSq >= o.PointerRadius*o.PointerRadius {
		return false
	}
	dist := math.Sqrt(distSq)
	force := (o.PointerRadius - dist) / o.PointerRadius
	g := force * o.PointerStrength * config.PointerImpulseScale
	if o.PointerMode == config.Repel {
		g = -g
	}
	p.VX += dx / dist * g
	p.VY += dy / dist * g
	p.Glow = 1 + force*config.GlowGain
	return true
}

func (p *Particle) decay() {
	p.Glow = math.Max(1, p.Glow*config.GlowDecay)
}

// integrate moves the particle, damps its velocity and wraps it onto the
// w x h torus.
func (p *Particle) integrate(w, h float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= config.VelocityDamping
	p.VY *= config.VelocityDamping
	p.X = utils.Wrap(p.X, w)
	p.Y = utils.Wrap(p.Y, h)
}

// Alpha is the rendered opacity, always within [0, 1].
func (p Particle) Alpha() float64 {
	a := p.BaseOpacity * (0.8 + p.Glow*0.2)
	if math.IsNaN(a) {
		return 0
	}
	return utils.Clamp(a, 0, 1)
}

// Glowing reports whether the halo pass is drawn for this particle.
func (p Particle) Glowing() bool {
	return p.Glow > config.GlowThreshold
}

// GlowBlur is the halo radius for the configured glow intensity.
func (p Particle) GlowBlur(intensity float64) float64 {
	return intensity * 0.5 * p.Glow
}
