// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap reduces v into [0, size) on a ring of the given size. A non-positive
// size returns 0.
func Wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// math.Mod of a tiny negative can round back up to size
	if v >= size {
		v = 0
	}
	return v
}
