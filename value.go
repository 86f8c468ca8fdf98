package knobkit

import "math"

// dragSensitivity converts pointer travel (in pixels) into value
// units.
const dragSensitivity = 1.0 / 1000

// adjust applies a single drag-update delta to the current value.
// The combined dx+dy travel is scaled by dragSensitivity, added to
// cur and clamped to [min, max].  With steps > 0 the result snaps to
// the nearest of steps equal intervals across the range.  A
// zero-width range leaves the value fixed at min.
func adjust(cur, dx, dy, min, max float64, steps int) float64 {
	v := cur + (dx+dy)*dragSensitivity
	v = clamp(v, min, max)
	if steps > 0 && max > min {
		interval := (max - min) / float64(steps)
		v = min + math.Round((v-min)/interval)*interval
	}
	return v
}

// displayValue rounds v to 2 decimal places.  Labels use this so that
// slow drags don't flicker through long fractional strings.
func displayValue(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
