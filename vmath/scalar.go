package vmath

import "math"

const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Clamp limits v to [lo, hi], lo wins if the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// MoveTowards steps current toward target by at most maxDelta without overshooting
// Negative maxDelta is treated as zero
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// Lerp interpolates a toward b, t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RoundInt rounds half away from zero (2.5 -> 3, -2.5 -> -3)
func RoundInt(v float64) int {
	return int(math.Round(v))
}
