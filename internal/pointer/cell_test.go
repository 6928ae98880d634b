package pointer

import (
	"sync"
	"testing"

	"gravity-stars/internal/config"
)

func TestDefaultsToSentinel(t *testing.T) {
	for name, c := range map[string]*Cell{"NewCell": NewCell(), "Zero value": {}} {
		x, y := c.Load()
		if x != config.PointerSentinel || y != config.PointerSentinel {
			t.Errorf("%s: expected sentinel, got (%g, %g)", name, x, y)
		}
	}
}

func TestStoreLoadReset(t *testing.T) {
	c := NewCell()
	c.Store(12.5, -3)
	if x, y := c.Load(); x != 12.5 || y != -3 {
		t.Errorf("Expected (12.5, -3), got (%g, %g)", x, y)
	}
	c.Reset()
	if x, _ := c.Load(); x != config.PointerSentinel {
		t.Errorf("Expected sentinel after reset, got %g", x)
	}
}

func TestNoTornReads(t *testing.T) {
	c := NewCell()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			c.Store(float64(i), float64(i))
		}
	}()
	for i := 0; i < 10000; i++ {
		x, y := c.Load()
		if x != y && x != config.PointerSentinel {
			t.Fatalf("Torn read (%g, %g)", x, y)
		}
	}
	wg.Wait()
}

func TestCellsAreIsolated(t *testing.T) {
	a, b := NewCell(), NewCell()
	a.Store(1, 2)
	if x, _ := b.Load(); x != config.PointerSentinel {
		t.Errorf("Store on one cell leaked into another: %g", x)
	}
}
