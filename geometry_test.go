package knobkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, normalize(0, 0, 1))
	assert.Equal(t, 1.0, normalize(1, 0, 1))
	assert.InDelta(t, 0.5, normalize(50, 0, 100), 1e-12)

	// Out-of-range values clamp.
	assert.Equal(t, 0.0, normalize(-5, 0, 1))
	assert.Equal(t, 1.0, normalize(7, 0, 1))

	// Zero-width ranges pin to zero instead of dividing by zero.
	assert.Equal(t, 0.0, normalize(3, 3, 3))
}

func TestValueAngleEndpoints(t *testing.T) {
	assert.InDelta(t, 2*math.Pi/3, valueAngle(0), 1e-12)
	assert.InDelta(t, 2*math.Pi/3+5*math.Pi/3, valueAngle(1), 1e-12)
}

func TestValueAngleMonotonic(t *testing.T) {
	prev := valueAngle(0)
	for i := 1; i <= 1000; i++ {
		a := valueAngle(float64(i) / 1000)
		assert.Greater(t, a, prev)
		prev = a
	}
}

func TestPointAt(t *testing.T) {
	// Angle 0 is due east of the center.
	x, y := pointAt(100, 100, 50, 0)
	assert.InDelta(t, 150, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	// Pi/2 is straight down in screen coordinates.
	x, y = pointAt(100, 100, 50, math.Pi/2)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 150, y, 1e-9)
}
