// cmd/stars/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gravity-stars/internal/appearance"
	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/frame"
	"gravity-stars/internal/page"
	"gravity-stars/internal/state"
	"gravity-stars/internal/ui"
)

const startMounted = true // true — начинать со звёздным фоном, false — с пустой страницы

type AppGame struct {
	stateMachine   *state.StateMachine
	env            *state.Env
	lastUpdateTime time.Time

	winW, winH int
	lastX      float64
	lastY      float64
	haveCursor bool
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		a.stateMachine.Close()
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	dpr := ebiten.Monitor().DeviceScaleFactor()
	if a.env.Hero.SetWindow(float64(a.winW), float64(a.winH), dpr) {
		a.env.Bus.Dispatch(event.Event{Type: event.Resized})
	}
	a.trackPointer()

	a.env.Aurora.Step()
	if a.env.Hero.SetTextColor(a.env.Aurora.CSS()) {
		a.env.Bus.Dispatch(event.Event{Type: event.AppearanceChanged})
	}

	a.stateMachine.Update(deltaTime)
	a.env.Frames.Run()
	return nil
}

// trackPointer forwards the cursor, or the first touch, in logical pixels.
func (a *AppGame) trackPointer() {
	var x, y float64
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		x, y = float64(tx), float64(ty)
	} else {
		cx, cy := ebiten.CursorPosition()
		x, y = float64(cx), float64(cy)
	}
	dpr := a.env.Hero.DevicePixelRatio()
	x, y = x/dpr, y/dpr
	if a.haveCursor && x == a.lastX && y == a.lastY {
		return
	}
	a.lastX, a.lastY, a.haveCursor = x, y, true
	a.env.Bus.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: x, Y: y}})
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	dpr := float32(a.env.Hero.DevicePixelRatio())

	// мягкая подсветка баннера текущим оттенком
	vector.DrawFilledRect(screen, 0, 0, w, h, a.env.Aurora.Tint(0.2), false)
	vector.DrawFilledRect(screen, 0, 0, w, float32(config.NavBarHeight)*dpr, config.NavBarColor, false)

	a.stateMachine.Draw(screen)
}

// Layout keeps the logical window size for the hero container and renders
// at device resolution.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.winW, a.winH = outsideWidth, outsideHeight
	s := ebiten.Monitor().DeviceScaleFactor()
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func main() {
	configPath := flag.String("config", "", "TOML file with star field options")
	flag.Parse()

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	hud, err := ui.NewHUD(ebiten.Monitor().DeviceScaleFactor())
	if err != nil {
		log.Fatal(err)
	}
	aurora := appearance.NewAurora(config.AuroraHues)

	env := &state.Env{
		Bus:     event.NewDispatcher(),
		Frames:  frame.NewQueue(),
		Hero:    page.NewHero(aurora.CSS()),
		Options: opts,
		HUD:     hud,
		Aurora:  aurora,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	if startMounted {
		sm.SetState(state.NewHeroState(sm, env))
	} else {
		sm.SetState(state.NewBlankState(sm, env))
	}
	app := &AppGame{
		stateMachine:   sm,
		env:            env,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Gravity Stars")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
