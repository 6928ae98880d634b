// cmd/stars_term/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/field"
	"gravity-stars/internal/frame"
	"gravity-stars/pkg/render/termsurface"
)

var configPath = flag.String("config", "", "TOML file with star field options")

// terminal is the whole screen as the field's container; one cell covers
// TermCellWidth x TermCellHeight logical pixels.
type terminal struct {
	screen tcell.Screen
	color  string
}

func (t *terminal) Bounds() (float64, float64, float64, float64) {
	cols, rows := t.screen.Size()
	return 0, 0, float64(cols * config.TermCellWidth), float64(rows * config.TermCellHeight)
}

func (t *terminal) DevicePixelRatio() float64 { return 1 }
func (t *terminal) TextColor() string         { return t.color }

type command int

const (
	cmdQuit command = iota
	cmdResize
	cmdToggleMode
	cmdToggleInteractive
)

func main() {
	flag.Parse()

	opts, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	host := &terminal{screen: screen, color: "#e0f0ff"}
	bus := event.NewDispatcher()
	frames := frame.NewQueue()
	surface := termsurface.New(screen, config.TermCellWidth, config.TermCellHeight)

	stars := field.New(opts, nil).Quiet()
	if err := stars.Mount(host, surface, bus, frames); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer stars.Unmount()

	// Input goroutine: pointer samples go straight into the field's cell,
	// everything else is handed to the frame loop.
	commands := make(chan command, 8)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventMouse:
				col, row := ev.Position()
				stars.SetPointer(
					float64(col*config.TermCellWidth)+config.TermCellWidth/2,
					float64(row*config.TermCellHeight)+config.TermCellHeight/2,
				)
			case *tcell.EventResize:
				commands <- cmdResize
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					commands <- cmdQuit
				case ev.Rune() == 'm':
					commands <- cmdToggleMode
				case ev.Rune() == 'i':
					commands <- cmdToggleInteractive
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TermFrameRate)
	defer ticker.Stop()
	for {
		select {
		case c := <-commands:
			switch c {
			case cmdQuit:
				return
			case cmdResize:
				screen.Sync()
				bus.Dispatch(event.Event{Type: event.Resized})
			case cmdToggleMode:
				stars.SetPointerMode(stars.Options().PointerMode.Toggle())
			case cmdToggleInteractive:
				stars.SetInteractive(!stars.Options().Interactive)
			}
		case <-ticker.C:
			o := stars.Options()
			surface.SetStatus(fmt.Sprintf(" %s  stars %d  m mode  i interactive  q quit ", o.PointerMode, len(stars.Particles())))
			frames.Run()
		}
	}
}
