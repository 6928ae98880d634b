// pkg/render/termsurface/surface.go
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"gravity-stars/pkg/render"
)

var (
	_ render.Surface = (*Surface)(nil)
	_ render.Framer  = (*Surface)(nil)
)

// glyphs by accumulated intensity, dimmest first
var glyphs = []rune{'·', '∙', '•', '✦', '✷'}

const haloGain = 0.35

type cell struct {
	level   float32
	r, g, b uint8
}

// Surface maps device pixels onto terminal cells. Each cell accumulates the
// alpha painted into it and shows a glyph whose weight follows that total.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float32
	cols, rows   int
	cells        []cell
	style        tcell.Style
	status       string
}

// New paints onto screen with cells of cellW x cellH device pixels.
func New(screen tcell.Screen, cellW, cellH float32) *Surface {
	return &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		style:  tcell.StyleDefault.Background(tcell.ColorReset),
	}
}

func (s *Surface) Resize(width, height int) {
	s.cols = int(math.Ceil(float64(float32(width) / s.cellW)))
	s.rows = int(math.Ceil(float64(float32(height) / s.cellH)))
	s.cells = make([]cell, s.cols*s.rows)
}

func (s *Surface) BeginFrame() {}

// EndFrame pushes the cell buffer to the screen.
func (s *Surface) EndFrame() {
	if s.cells == nil {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if c.level <= 0 {
				s.screen.SetContent(col, row, ' ', nil, s.style)
				continue
			}
			g, fg := Glyph(c.level), color.NRGBA{R: c.r, G: c.g, B: c.b, A: 255}
			shade := render.Darken(fg, math.Min(1, 0.35+float64(c.level)))
			style := s.style.Foreground(tcell.NewRGBColor(int32(shade.R), int32(shade.G), int32(shade.B)))
			s.screen.SetContent(col, row, g, nil, style)
		}
	}
	for i, r := range []rune(s.status) {
		if i >= s.cols {
			break
		}
		s.screen.SetContent(i, 0, r, nil, s.style.Foreground(tcell.ColorSilver))
	}
	s.screen.Show()
}

// SetStatus overlays text on the top row from the next frame on.
func (s *Surface) SetStatus(text string) {
	s.status = text
}

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

func (s *Surface) FillCircle(x, y, radius float32, c color.NRGBA) {
	s.deposit(int(x/s.cellW), int(y/s.cellH), float32(c.A)/255, c)
}

// Glow spreads a faint halo over the cells within radius+blur.
func (s *Surface) Glow(x, y, radius, blur float32, c color.NRGBA) {
	reach := radius + blur
	c0, c1 := int((x-reach)/s.cellW), int((x+reach)/s.cellW)
	r0, r1 := int((y-reach)/s.cellH), int((y+reach)/s.cellH)
	a := float32(c.A) / 255 * haloGain
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float32(col) + 0.5) * s.cellW
			cy := (float32(row) + 0.5) * s.cellH
			d := float32(math.Hypot(float64(cx-x), float64(cy-y)))
			if d > reach {
				continue
			}
			s.deposit(col, row, a*(1-d/reach), c)
		}
	}
}

func (s *Surface) Release() {
	s.cells = nil
	s.cols, s.rows = 0, 0
}

func (s *Surface) deposit(col, row int, level float32, c color.NRGBA) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows || level <= 0 {
		return
	}
	cl := &s.cells[row*s.cols+col]
	if level >= cl.level {
		cl.r, cl.g, cl.b = c.R, c.G, c.B
	}
	cl.level += level
}

// Glyph picks the rune for an accumulated intensity.
func Glyph(level float32) rune {
	i := int(level * float32(len(glyphs)))
	if i >= len(glyphs) {
		i = len(glyphs) - 1
	}
	if i < 0 {
		i = 0
	}
	return glyphs[i]
}
