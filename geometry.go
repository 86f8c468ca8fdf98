package knobkit

import "math"

// Knob sweep geometry.  The usable arc covers 300 degrees starting at
// 120 degrees, which leaves a 60 degree gap centered on the bottom of
// the knob.  Angles are in screen coordinates: y grows downward, so
// positive angles run clockwise from east.
const (
	sweepStart = 2 * math.Pi / 3 // 120 degrees
	sweepTotal = 5 * math.Pi / 3 // 300 degrees
)

// normalize maps v onto [0, 1] across [min, max].  A zero-width (or
// inverted) range pins the knob; callers get 0 rather than a division
// by zero.
func normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := (v - min) / (max - min)
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return n
}

// valueAngle returns the marker angle for a normalized value in
// [0, 1].  The result grows monotonically from sweepStart to
// sweepStart+sweepTotal.
func valueAngle(n float64) float64 {
	return sweepStart + n*sweepTotal
}

// pointAt returns the position at the given angle and radius around a
// center point.
func pointAt(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}
