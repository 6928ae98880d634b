package utils

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		v, size   float64
		want      float64
		tolerance float64
	}{
		{"Inside", 5, 10, 5, 0},
		{"Past right edge", 10.999, 10, 0.999, 1e-9},
		{"Exactly at edge", 10, 10, 0, 0},
		{"Past left edge", -0.5, 10, 9.5, 1e-9},
		{"Far outside", 35, 10, 5, 1e-9},
		{"Tiny negative", -1e-18, 10, 0, 0},
		{"Zero size", 3, 0, 0, 0},
		{"NaN", math.NaN(), 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.v, tt.size)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Wrap(%g, %g) = %g, want %g", tt.v, tt.size, got, tt.want)
			}
			if tt.size > 0 && (got < 0 || got >= tt.size) {
				t.Errorf("Wrap(%g, %g) = %g escapes [0, size)", tt.v, tt.size, got)
			}
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(2, 0, 1) != 1 || Clamp(-1, 0, 1) != 0 || Clamp(0.3, 0, 1) != 0.3 {
		t.Error("Clamp out of range")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Errorf("Expected 2.5, got %g", Lerp(0, 10, 0.25))
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed should give the same sequence")
		}
	}
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 value %g outside [0, 1)", v)
		}
	}
}
