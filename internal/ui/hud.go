// internal/ui/hud.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"gravity-stars/internal/config"
)

// HUD prints status lines in the nav bar.
type HUD struct {
	face       font.Face
	lineHeight int
}

func NewHUD(scale float64) (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "hud: parse font")
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.HUDFontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "hud: font face")
	}
	return &HUD{face: face, lineHeight: face.Metrics().Height.Ceil()}, nil
}

// Draw prints lines top-down starting with the baseline of the first at y.
func (h *HUD) Draw(screen *ebiten.Image, x, y int, lines ...string) {
	for i, line := range lines {
		text.Draw(screen, line, h.face, x, y+i*h.lineHeight, config.TextLightColor)
	}
}

// Width is the advance of s in pixels.
func (h *HUD) Width(s string) int {
	return font.MeasureString(h.face, s).Ceil()
}
