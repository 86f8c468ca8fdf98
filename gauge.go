package knobkit

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jphsd/graphics2d"
)

// gaugeSegments is how many short arc segments a full sweep is broken
// into so the gradient can vary along it.
const gaugeSegments = 64

// GaugeKnob is an arc-fill level indicator: an arc grows clockwise
// from the start of the sweep in proportion to the value's position
// in [Min, Max], stroked with a gradient across the configured
// colors.  Dragging adjusts the value continuously; gauges are never
// stepped.
type GaugeKnob struct {
	Min, Max float64

	// TrackColor is the faint full-sweep arc drawn under the fill.
	TrackColor color.Color

	gradient *Gradient
	value    *WatchedFloat
}

// NewGaugeKnob creates a gauge over [min, max], bound to an existing
// WatchedFloat.  The fill is stroked with a gradient blended across
// colors in order from the start of the sweep to the end.
func NewGaugeKnob(min, max float64, value *WatchedFloat, colors ...color.Color) *GaugeKnob {
	return &GaugeKnob{
		Min:        min,
		Max:        max,
		TrackColor: colorInActive,
		gradient:   NewGradient(colors...),
		value:      value,
	}
}

// Value returns the gauge's current value.
func (g *GaugeKnob) Value() float64 {
	return g.value.Get()
}

// Set sets the gauge's value directly, clamped to [Min, Max],
// triggering any callbacks set on the underlying WatchedFloat.
func (g *GaugeKnob) Set(v float64) {
	g.value.Set(clamp(v, g.Min, g.Max))
}

// HandleDrag feeds one gesture event into the gauge.  Only DragMove
// matters here: the delta adjusts the value with the same 1/1000
// sensitivity as ParamKnob, but without quantization.
func (g *GaugeKnob) HandleDrag(event DragEvent, x, y int) {
	if event != DragMove {
		return
	}
	g.value.Set(adjust(g.value.Get(), float64(x), float64(y), g.Min, g.Max, 0))
}

// Render draws the gauge into a w x h image.  The arc radius is 80%
// of half the smaller dimension.  The filled span runs from the sweep
// start to the angle proportional to the value and is stroked in
// short segments, each colored by its position along the full sweep,
// so the gradient is revealed as the gauge fills.
func (g *GaugeKnob) Render(w, h int) image.Image {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(im, im.Bounds(), &image.Uniform{colorBackground}, image.Point{}, draw.Src)

	min := w
	if h < min {
		min = h
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	r := 0.8 * float64(min) / 2

	sx, sy := pointAt(cx, cy, r, sweepStart)
	track := graphics2d.NewPen(g.TrackColor, 1)
	graphics2d.DrawArc(im, []float64{sx, sy}, []float64{cx, cy}, sweepTotal, track)

	n := normalize(g.value.Get(), g.Min, g.Max)
	if n <= 0 {
		return im
	}

	segs := int(math.Ceil(gaugeSegments * n))
	span := n * sweepTotal
	for i := 0; i < segs; i++ {
		a0 := sweepStart + span*float64(i)/float64(segs)
		a1 := sweepStart + span*float64(i+1)/float64(segs)
		mid := (a0 + a1) / 2
		pen := graphics2d.NewPen(g.gradient.At((mid-sweepStart)/sweepTotal), 4)
		x0, y0 := pointAt(cx, cy, r, a0)
		graphics2d.DrawArc(im, []float64{x0, y0}, []float64{cx, cy}, a1-a0, pen)
	}

	return im
}
