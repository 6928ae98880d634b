// internal/pointer/cell.go
package pointer

import (
	"sync/atomic"

	"gravity-stars/internal/config"
)

// Position is one pointer sample in container-local pixels.
type Position struct {
	X, Y float64
}

var sentinel = &Position{X: config.PointerSentinel, Y: config.PointerSentinel}

// Cell holds the latest pointer sample. One goroutine stores, the frame loop
// loads; the pair is swapped as a unit so a load never sees half a sample.
type Cell struct {
	p atomic.Pointer[Position]
}

func NewCell() *Cell {
	c := &Cell{}
	c.Reset()
	return c
}

func (c *Cell) Store(x, y float64) {
	c.p.Store(&Position{X: x, Y: y})
}

// Load returns the latest sample, or the off-screen sentinel if none.
func (c *Cell) Load() (x, y float64) {
	p := c.p.Load()
	if p == nil {
		p = sentinel
	}
	return p.X, p.Y
}

// Reset moves the pointer far outside any viewport.
func (c *Cell) Reset() {
	c.p.Store(sentinel)
}
