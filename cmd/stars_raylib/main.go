// cmd/stars_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravity-stars/internal/appearance"
	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/field"
	"gravity-stars/internal/frame"
	"gravity-stars/internal/ui/rlui"
	"gravity-stars/pkg/render/rlsurface"
)

// window is the whole raylib window as the field's container. Raylib
// already scales the framebuffer on high-DPI screens, so the field draws
// at logical size.
type window struct {
	color string
}

func (w *window) Bounds() (float64, float64, float64, float64) {
	return 0, 0, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (w *window) DevicePixelRatio() float64 { return 1 }
func (w *window) TextColor() string         { return w.color }

func main() {
	configPath := flag.String("config", "", "TOML file with star field options")
	flag.Parse()

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация ---
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Gravity Stars | M - mode, I - interactive")
	rl.SetTargetFPS(60)
	backgroundColor := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255)

	aurora := appearance.NewAurora(config.AuroraHues)
	host := &window{color: aurora.CSS()}
	bus := event.NewDispatcher()
	frames := frame.NewQueue()
	surface := rlsurface.New()

	modeButton := rlui.NewButton(rl.NewRectangle(16, 48, 120, 32), "")
	interactiveButton := rlui.NewButton(rl.NewRectangle(146, 48, 120, 32), "interactive")

	stars := field.New(opts, nil)
	if err := stars.Mount(host, surface, bus, frames); err != nil {
		rl.CloseWindow()
		log.Fatal(err)
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			bus.Dispatch(event.Event{Type: event.Resized})
		}
		mouse := rl.GetMousePosition()
		bus.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: float64(mouse.X), Y: float64(mouse.Y)}})

		if rl.IsKeyPressed(rl.KeyM) || modeButton.IsClicked(mouse) {
			stars.SetPointerMode(stars.Options().PointerMode.Toggle())
		}
		if rl.IsKeyPressed(rl.KeyI) || interactiveButton.IsClicked(mouse) {
			stars.SetInteractive(!stars.Options().Interactive)
		}

		aurora.Step()
		if css := aurora.CSS(); css != host.color {
			host.color = css
			bus.Dispatch(event.Event{Type: event.AppearanceChanged})
		}

		frames.Run()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		surface.DrawTo(0, 0)
		o := stars.Options()
		rl.DrawText(fmt.Sprintf("%s  stars %d  FPS %d", o.PointerMode, len(stars.Particles()), rl.GetFPS()),
			16, 16, config.HUDFontSize+4, rl.RayWhite)
		modeButton.Label = o.PointerMode.String()
		modeButton.Draw(mouse, o.PointerMode == config.Repel)
		interactiveButton.Draw(mouse, o.Interactive)
		rl.EndDrawing()
	}

	stars.Unmount()
	rl.CloseWindow()
}
