// cmd/stars_sdl/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"golang.org/x/image/font/gofont/goregular"

	"gravity-stars/internal/appearance"
	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/field"
	"gravity-stars/internal/frame"
	"gravity-stars/pkg/render/canvassurface"
)

// window is the SDL canvas as the field's container.
type window struct {
	cv    *canvas.Canvas
	color string
}

func (w *window) Bounds() (float64, float64, float64, float64) {
	return 0, 0, float64(w.cv.Width()), float64(w.cv.Height())
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

	wnd, cv, err := sdlcanvas.CreateWindow(config.ScreenWidth, config.ScreenHeight, "Gravity Stars (canvas)")
	if err != nil {
		log.Fatal(err)
	}
	defer wnd.Destroy()
	cv.SetFont(goregular.TTF, config.HUDFontSize)

	aurora := appearance.NewAurora(config.AuroraHues)
	host := &window{cv: cv, color: aurora.CSS()}
	bus := event.NewDispatcher()
	frames := frame.NewQueue()

	stars := field.New(opts, nil)
	if err := stars.Mount(host, canvassurface.New(cv), bus, frames); err != nil {
		log.Fatal(err)
	}
	defer stars.Unmount()

	wnd.MouseMove = func(x, y int) {
		bus.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: float64(x), Y: float64(y)}})
	}
	wnd.SizeChange = func(w, h int) {
		bus.Dispatch(event.Event{Type: event.Resized})
	}
	wnd.KeyDown = func(scancode int, rn rune, name string) {
		switch name {
		case "Escape":
			wnd.Close()
		case "KeyM":
			stars.SetPointerMode(stars.Options().PointerMode.Toggle())
		case "KeyI":
			stars.SetInteractive(!stars.Options().Interactive)
		}
	}

	wnd.MainLoop(func() {
		aurora.Step()
		if css := aurora.CSS(); css != host.color {
			host.color = css
			bus.Dispatch(event.Event{Type: event.AppearanceChanged})
		}

		// поле само очищает холст перед кадром
		frames.Run()

		o := stars.Options()
		cv.SetFillStyle("#F0F0F0")
		cv.FillText(fmt.Sprintf("%s  stars %d", o.PointerMode, len(stars.Particles())), 16, 24)
	})
}
