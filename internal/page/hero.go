// internal/page/hero.go
package page

import "gravity-stars/internal/config"

// Hero is the banner region under the nav bar that hosts the star field.
// It implements field.Container. Setters return true when observers should
// be notified.
type Hero struct {
	winW, winH float64
	dpr        float64
	hidden     bool
	color      string
	top        float64
}

func NewHero(textColor string) *Hero {
	return &Hero{dpr: 1, color: textColor, top: config.NavBarHeight}
}

func (h *Hero) Bounds() (x, y, width, height float64) {
	if h.hidden {
		return 0, h.top, 0, 0
	}
	height = h.winH - h.top
	if height < 0 || h.winW <= 0 {
		return 0, h.top, 0, 0
	}
	return 0, h.top, h.winW, height
}

func (h *Hero) DevicePixelRatio() float64 { return h.dpr }
func (h *Hero) TextColor() string         { return h.color }
func (h *Hero) Hidden() bool              { return h.hidden }

// Top is the container's offset from the top of the window.
func (h *Hero) Top() float64 { return h.top }

// SetWindow records the window size in logical pixels and the device scale.
func (h *Hero) SetWindow(width, height, dpr float64) bool {
	if width == h.winW && height == h.winH && dpr == h.dpr {
		return false
	}
	h.winW, h.winH, h.dpr = width, height, dpr
	return true
}

// SetHidden models display:none on the banner.
func (h *Hero) SetHidden(hidden bool) bool {
	if hidden == h.hidden {
		return false
	}
	h.hidden = hidden
	return true
}

func (h *Hero) SetTextColor(css string) bool {
	if css == h.color {
		return false
	}
	h.color = css
	return true
}
