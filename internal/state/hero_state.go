// internal/state/hero_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/field"
	"gravity-stars/internal/ui"
	"gravity-stars/pkg/render/ebitensurface"
)

// HeroState — страница со звёздным фоном за баннером
type HeroState struct {
	sm        *StateMachine
	env       *Env
	field     *field.Field
	surface   *ebitensurface.Surface
	indicator *ui.ModeIndicator
}

func NewHeroState(sm *StateMachine, env *Env) *HeroState {
	indicator := ui.NewModeIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.NavBarHeight)/2,
		float32(config.IndicatorRadius),
	)
	return &HeroState{sm: sm, env: env, indicator: indicator}
}

func (h *HeroState) Enter() {
	h.field = field.New(h.env.Options, nil)
	h.surface = ebitensurface.New()
	if err := h.field.Mount(h.env.Hero, h.surface, h.env.Bus, h.env.Frames); err != nil {
		log.Printf("hero: %v", err)
		h.field = nil
	}
}

func (h *HeroState) Update(deltaTime float64) {
	h.indicator.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.sm.SetState(NewBlankState(h.sm, h.env))
		return
	}
	if h.field == nil {
		return
	}
	opts := h.field.Options()
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		h.field.SetPointerMode(opts.PointerMode.Toggle())
		h.indicator.Toggled()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		h.field.SetInteractive(!opts.Interactive)
		h.indicator.Toggled()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if h.env.Hero.SetHidden(!h.env.Hero.Hidden()) {
			h.env.Bus.Dispatch(event.Event{Type: event.Resized})
		}
	}
}

func (h *HeroState) Draw(screen *ebiten.Image) {
	if h.field == nil {
		return
	}
	dpr := h.env.Hero.DevicePixelRatio()
	if !h.env.Hero.Hidden() {
		scale := h.field.Viewport().CompositeScale(dpr)
		h.surface.DrawTo(screen, 0, h.env.Hero.Top()*dpr, scale)
	}

	opts := h.field.Options()
	vp := h.field.Viewport()
	if h.env.HUD != nil {
		h.env.HUD.Draw(screen, int(16*dpr), int(22*dpr),
			fmt.Sprintf("%s  stars %d  %.0fx%.0f@%.1f  TPS %.0f",
				opts.PointerMode, len(h.field.Particles()), vp.Width, vp.Height, vp.DPR, ebiten.ActualTPS()),
			fmt.Sprintf("hue %.0f -> %.0f   space unmount  m mode  i interactive  h hide  esc quit",
				h.env.Aurora.Hue(), h.env.Aurora.Target()),
		)
	}

	// индикатор привязан к правому краю навбара
	s := float32(dpr)
	h.indicator.X = float32(screen.Bounds().Dx()) - config.IndicatorOffsetX*s
	h.indicator.Y = config.NavBarHeight / 2 * s
	h.indicator.Radius = config.IndicatorRadius * s
	h.indicator.Draw(screen, ui.Color(opts.PointerMode, opts.Interactive))
}

func (h *HeroState) Exit() {
	if h.field != nil {
		h.field.Unmount()
		h.field = nil
	}
	h.surface = nil
}
