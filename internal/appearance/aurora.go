// internal/appearance/aurora.go
package appearance

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"gravity-stars/internal/utils"
	"gravity-stars/pkg/render"
)

const (
	auroraEase       = 0.005
	auroraSnap       = 1.0
	auroraSaturation = 1.0
	auroraLightness  = 0.54
)

// Aurora eases the hero hue through a list of stops, one step per frame.
// The host writes CSS() into the container text colour so the star field
// follows it.
type Aurora struct {
	hues  []float64
	index int
	hue   float64
}

func NewAurora(hues []float64) *Aurora {
	if len(hues) == 0 {
		hues = []float64{0}
	}
	return &Aurora{hues: append([]float64(nil), hues...), hue: hues[0]}
}

// Step advances the hue one frame towards the current stop.
func (a *Aurora) Step() {
	target := a.hues[a.index]
	a.hue = utils.Lerp(a.hue, target, auroraEase)
	if math.Abs(a.hue-target) < auroraSnap {
		a.index = (a.index + 1) % len(a.hues)
	}
}

func (a *Aurora) Hue() float64 { return a.hue }

// Target is the stop currently eased towards.
func (a *Aurora) Target() float64 { return a.hues[a.index] }

func (a *Aurora) CSS() string {
	return fmt.Sprintf("hsl(%.2f, 100%%, 54%%)", a.hue)
}

// Tint is the hue at the given alpha, for the banner gradient.
func (a *Aurora) Tint(alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(a.hue, auroraSaturation, auroraLightness).Clamped().RGB255()
	return render.WithAlpha(color.NRGBA{R: r, G: g, B: b}, alpha)
}
