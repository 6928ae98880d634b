// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gravity-stars/internal/config"
)

const (
	pulseGain  = 0.3
	pulseDecay = 8.0
)

// ModeIndicator is the dot showing the pointer mode. It pulses briefly
// after each toggle; the pulse runs on frame time, not the wall clock.
type ModeIndicator struct {
	X, Y        float32
	Radius      float32
	sinceToggle float64 // секунды с последнего переключения
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius, sinceToggle: math.Inf(1)}
}

// Color picks the indicator fill for a mode.
func Color(mode config.PointerMode, interactive bool) color.RGBA {
	if !interactive {
		return config.DisabledColor
	}
	if mode == config.Repel {
		return config.RepelColor
	}
	return config.AttractColor
}

// Update advances the pulse by deltaTime seconds.
func (i *ModeIndicator) Update(deltaTime float64) {
	if deltaTime > 0 {
		i.sinceToggle += deltaTime
	}
}

// Scale is the current pulse factor, 1.3 right after a toggle easing to 1.
func (i *ModeIndicator) Scale() float64 {
	return 1.0 + pulseGain*math.Exp(-i.sinceToggle*pulseDecay)
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image, c color.RGBA) {
	r := i.Radius * float32(i.Scale())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1.5, config.IndicatorStroke, true)
}

func (i *ModeIndicator) Toggled() {
	i.sinceToggle = 0
}
