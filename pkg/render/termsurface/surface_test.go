package termsurface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimSurface(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	s := New(screen, 8, 16)
	s.Resize(cols*8, rows*16)
	return s, screen
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		level float32
		want  rune
	}{
		{0, '·'},
		{0.1, '·'},
		{0.5, '•'},
		{0.99, '✷'},
		{7, '✷'},
		{-1, '·'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.level); got != tt.want {
			t.Errorf("Glyph(%g) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestFillCircleLandsInCell(t *testing.T) {
	s, screen := newSimSurface(t, 10, 5)
	white := color.NRGBA{255, 255, 255, 255}

	s.Clear()
	s.FillCircle(8*3+4, 16*2+8, 2, white)
	s.EndFrame()

	r, _, _, _ := screen.GetContent(3, 2)
	if r == ' ' {
		t.Error("Expected a glyph in cell (3, 2)")
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected empty cell at origin, got %q", r)
	}
}

func TestDepositClipsOutsideGrid(t *testing.T) {
	s, _ := newSimSurface(t, 4, 4)
	s.FillCircle(-50, -50, 2, color.NRGBA{255, 0, 0, 255})
	s.FillCircle(1000, 1000, 2, color.NRGBA{255, 0, 0, 255})
	s.Glow(0, 0, 2, 40, color.NRGBA{255, 0, 0, 255})
	for i, c := range s.cells {
		if c.level < 0 {
			t.Fatalf("Cell %d has negative level", i)
		}
	}
	if s.cells[0].level == 0 {
		t.Error("Halo at the origin should reach cell 0")
	}
}

func TestReleaseDropsCells(t *testing.T) {
	s, _ := newSimSurface(t, 4, 4)
	s.Release()
	s.FillCircle(4, 4, 2, color.NRGBA{255, 255, 255, 255})
	s.EndFrame()
	if s.cells != nil {
		t.Error("Expected no cells after release")
	}
}

func TestStatusOverlay(t *testing.T) {
	s, screen := newSimSurface(t, 6, 2)
	s.SetStatus("attract")
	s.Clear()
	s.EndFrame()

	want := "attrac" // clipped to the grid
	for i, r := range want {
		if got, _, _, _ := screen.GetContent(i, 0); got != r {
			t.Errorf("cell %d: expected %q, got %q", i, r, got)
		}
	}
	if got, _, _, _ := screen.GetContent(0, 1); got != ' ' {
		t.Errorf("Expected second row untouched, got %q", got)
	}
}
