package knobkit

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertColorNear checks that two colors match to within one 8-bit
// unit per channel, which absorbs colorspace round-trip error.
func assertColorNear(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.InDelta(t, wr, gr, 257)
	assert.InDelta(t, wg, gg, 257)
	assert.InDelta(t, wb, gb, 257)
}

func TestGradientEndpoints(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	g := NewGradient(red, color.RGBA{255, 255, 0, 255}, blue)

	assertColorNear(t, red, g.At(0))
	assertColorNear(t, blue, g.At(1))

	// Out-of-range positions clamp to the endpoints.
	assertColorNear(t, red, g.At(-2))
	assertColorNear(t, blue, g.At(5))
}

func TestGradientMidpointBlends(t *testing.T) {
	g := NewGradient(color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255})

	r, gg, b, _ := g.At(0.5).RGBA()
	// A Lab blend of black and white stays neutral.
	assert.InDelta(t, r, gg, 600)
	assert.InDelta(t, gg, b, 600)
	assert.Greater(t, r, uint32(0))
	assert.Less(t, r, uint32(0xffff))
}

func TestGradientDegenerate(t *testing.T) {
	flat := NewGradient(color.RGBA{10, 20, 30, 255})
	assertColorNear(t, color.RGBA{10, 20, 30, 255}, flat.At(0.3))

	empty := NewGradient()
	assertColorNear(t, color.Black, empty.At(0.5))
}
