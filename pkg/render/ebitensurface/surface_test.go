package ebitensurface

import (
	"math"
	"testing"
)

func TestCompositeGeoM(t *testing.T) {
	tests := []struct {
		name         string
		x, y, scale  float64
		srcX, srcY   float64
		wantX, wantY float64
	}{
		{"Identity corner", 0, 0, 1, 0, 0, 0, 0},
		{"Offset only", 0, 168, 1, 100, 50, 100, 218},
		{"Clamped 3x host, far corner", 0, 168, 1.5, 2400, 1488, 3600, 2400},
		{"Clamped 3x host, origin", 0, 168, 1.5, 0, 0, 0, 168},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := compositeGeoM(tt.x, tt.y, tt.scale)
			gx, gy := m.Apply(tt.srcX, tt.srcY)
			if math.Abs(gx-tt.wantX) > 1e-9 || math.Abs(gy-tt.wantY) > 1e-9 {
				t.Errorf("Apply(%g, %g) = (%g, %g), want (%g, %g)", tt.srcX, tt.srcY, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}
