// internal/config/config.go
package config

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	NavBarHeight = 56 // hero container starts below the nav strip

	MaxDeviceScale = 2.0
	MinDeviceScale = 1.0

	// Terminal host: logical pixels covered by one cell.
	TermCellWidth  = 8
	TermCellHeight = 16
	TermFrameRate  = 30

	IndicatorOffsetX = 30
	IndicatorRadius  = 8.0
	HUDFontSize      = 14

	MaxDeltaTime = 0.1 // секунды; длинные паузы не разгоняют анимацию
)

// Pointer physics and render constants of the star field.
const (
	PointerImpulseScale = 0.003
	GlowGain            = 1.5
	GlowDecay           = 0.95
	GlowThreshold       = 1.2
	VelocityDamping     = 0.99
	RadiusFloor         = 1.2
	MinSpeedFactor      = 0.5
	MaxSpeedFactor      = 2.0
	PointerSentinel     = -2000.0
)

var (
	BackgroundColor = color.RGBA{2, 6, 23, 255}
	NavBarColor     = color.RGBA{10, 14, 32, 235}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	AttractColor    = color.RGBA{70, 200, 140, 255}
	RepelColor      = color.RGBA{220, 60, 60, 255}
	DisabledColor   = color.RGBA{128, 128, 128, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	// Hero hue stops in degrees, cycled by the aurora background.
	AuroraHues = []float64{160, 215, 300, 345}
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PointerMode selects the direction of pointer influence.
type PointerMode int

const (
	Attract PointerMode = iota
	Repel
)

func (m PointerMode) String() string {
	switch m {
	case Attract:
		return "attract"
	case Repel:
		return "repel"
	}
	return "unknown"
}

// Toggle returns the opposite mode.
func (m PointerMode) Toggle() PointerMode {
	if m == Attract {
		return Repel
	}
	return Attract
}

func (m PointerMode) MarshalText() ([]byte, error) {
	if m != Attract && m != Repel {
		return nil, errors.Wrapf(ErrInvalid, "pointer mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *PointerMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "attract":
		*m = Attract
	case "repel":
		*m = Repel
	default:
		return errors.Wrapf(ErrInvalid, "pointer_mode %q", string(text))
	}
	return nil
}

// Field holds the star field options. Zero values are not defaults; start
// from DefaultField or HeroField.
type Field struct {
	Count           int         `toml:"count"`
	ParticleSize    float64     `toml:"particle_size"`
	BaseOpacity     float64     `toml:"base_opacity"`
	GlowIntensity   float64     `toml:"glow_intensity"`
	DriftSpeed      float64     `toml:"drift_speed"`
	PointerRadius   float64     `toml:"pointer_radius"`
	PointerMode     PointerMode `toml:"pointer_mode"`
	PointerStrength float64     `toml:"pointer_strength"`
	Interactive     bool        `toml:"interactive"`
}

// DefaultField returns the stock options of the effect.
func DefaultField() Field {
	return Field{
		Count:           130,
		ParticleSize:    2.5,
		BaseOpacity:     0.8,
		GlowIntensity:   25,
		DriftSpeed:      0.8,
		PointerRadius:   250,
		PointerMode:     Attract,
		PointerStrength: 180,
		Interactive:     true,
	}
}

// HeroField is the lighter preset mounted behind the hero banner.
func HeroField() Field {
	f := DefaultField()
	f.Count = 80
	f.PointerStrength = 100
	return f
}

// Validate rejects options the field cannot honour. Opacity above 1 is
// allowed; rendered alpha is clamped. Every float must be finite.
func (f Field) Validate() error {
	for _, v := range []struct {
		key string
		val float64
	}{
		{"particle_size", f.ParticleSize},
		{"base_opacity", f.BaseOpacity},
		{"glow_intensity", f.GlowIntensity},
		{"drift_speed", f.DriftSpeed},
		{"pointer_radius", f.PointerRadius},
		{"pointer_strength", f.PointerStrength},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return errors.Wrapf(ErrInvalid, "%s %g", v.key, v.val)
		}
	}
	switch {
	case f.Count < 0:
		return errors.Wrapf(ErrInvalid, "count %d", f.Count)
	case f.ParticleSize < 0:
		return errors.Wrapf(ErrInvalid, "particle_size %g", f.ParticleSize)
	case f.BaseOpacity < 0:
		return errors.Wrapf(ErrInvalid, "base_opacity %g", f.BaseOpacity)
	case f.GlowIntensity < 0:
		return errors.Wrapf(ErrInvalid, "glow_intensity %g", f.GlowIntensity)
	case f.DriftSpeed < 0:
		return errors.Wrapf(ErrInvalid, "drift_speed %g", f.DriftSpeed)
	case f.PointerRadius < 0:
		return errors.Wrapf(ErrInvalid, "pointer_radius %g", f.PointerRadius)
	case f.PointerMode != Attract && f.PointerMode != Repel:
		return errors.Wrapf(ErrInvalid, "pointer_mode %d", int(f.PointerMode))
	}
	return nil
}
