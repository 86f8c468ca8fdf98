package knobkit

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugeKnobDragIsUnstepped(t *testing.T) {
	v := NewWatchedFloat(0)
	g := NewGaugeKnob(0, 1, v, color.White)

	g.HandleDrag(DragMove, 123, 0)
	assert.InDelta(t, 0.123, g.Value(), 1e-12)

	g.HandleDrag(DragMove, 0, -23)
	assert.InDelta(t, 0.1, g.Value(), 1e-12)
}

func TestGaugeKnobClamps(t *testing.T) {
	v := NewWatchedFloat(0.9)
	g := NewGaugeKnob(0, 1, v, color.White)

	g.HandleDrag(DragMove, 5000, 5000)
	assert.Equal(t, 1.0, g.Value())

	g.HandleDrag(DragMove, -50000, 0)
	assert.Equal(t, 0.0, g.Value())
}

func TestGaugeKnobIgnoresNonMoveEvents(t *testing.T) {
	v := NewWatchedFloat(0.4)
	g := NewGaugeKnob(0, 1, v, color.White)

	g.HandleDrag(DragStart, 0, 0)
	g.HandleDrag(DragClick, 100, 100)
	g.HandleDrag(DragEnd, 0, 0)
	assert.Equal(t, 0.4, g.Value())
}

func TestGaugeKnobRender(t *testing.T) {
	v := NewWatchedFloat(0.75)
	g := NewGaugeKnob(0, 1, v,
		color.RGBA{0, 160, 64, 255},
		color.RGBA{224, 32, 32, 255})

	im := g.Render(200, 160)
	assert.Equal(t, image.Rect(0, 0, 200, 160), im.Bounds())
	assert.True(t, hasInk(im), "rendered gauge has no visible pixels")
}

func TestGaugeKnobRenderEmpty(t *testing.T) {
	// At the bottom of the range only the track is drawn; the fill
	// loop must not run (or divide by zero).
	v := NewWatchedFloat(0)
	g := NewGaugeKnob(0, 1, v, color.White)

	im := g.Render(100, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 100), im.Bounds())
}
