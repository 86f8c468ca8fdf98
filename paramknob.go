package knobkit

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jphsd/graphics2d"
)

var (
	colorActive     = color.RGBA{192, 192, 192, 255}
	colorInActive   = color.RGBA{64, 64, 64, 255}
	colorBackground = color.RGBA{0, 0, 0, 255}
)

const (
	// tickCount is the number of radial tick marks ringing the
	// knob, spread evenly across the sweep.
	tickCount = 21

	// markerReach is the marker line's length as a fraction of the
	// knob radius.
	markerReach = 0.8

	// knobReach is the knob radius as a fraction of half the
	// smaller widget dimension, leaving room outside the rim for
	// the ticks.
	knobReach = 0.8

	tickInner = 1.06
	tickOuter = 1.18
)

// ParamKnob is a classic rotary parameter control: a circular knob
// with a pointer marker, ringed by tick marks.  Dragging adjusts the
// value; with Steps > 0 the value snaps to that many discrete levels
// across [Min, Max].  While a drag is in progress the knob shows its
// value in a ValueBox.
//
// The knob's value lives in a WatchedFloat, so anything that needs to
// react to the knob (a synth parameter, a DMX channel, a redraw) just
// adds a watcher.
type ParamKnob struct {
	Min, Max float64
	Steps    int

	// KnobColor, MarkerColor and TickColor control the rendered
	// parts.  NewParamKnob fills in the package defaults; callers
	// can overwrite them before the first Render.
	KnobColor   color.Color
	MarkerColor color.Color
	TickColor   color.Color

	value    *WatchedFloat
	valueBox *ValueBox
	showBox  bool
}

// NewParamKnob creates a parameter knob over [min, max], bound to an
// existing WatchedFloat.  steps > 0 quantizes the value to that many
// levels; steps == 0 leaves it continuous.
func NewParamKnob(min, max float64, steps int, value *WatchedFloat, fonts *Fonts) *ParamKnob {
	return &ParamKnob{
		Min:         min,
		Max:         max,
		Steps:       steps,
		KnobColor:   colorInActive,
		MarkerColor: colorActive,
		TickColor:   colorActive,
		value:       value,
		valueBox:    NewValueBox(fonts),
	}
}

// Value returns the knob's current value.
func (k *ParamKnob) Value() float64 {
	return k.value.Get()
}

// Set sets the knob's value directly, clamped to [Min, Max],
// triggering any callbacks set on the underlying WatchedFloat.
func (k *ParamKnob) Set(v float64) {
	k.value.Set(clamp(v, k.Min, k.Max))
}

// ShowingValueBox reports whether the value label should currently be
// visible.  It is true from DragStart until DragEnd.
func (k *ParamKnob) ShowingValueBox() bool {
	return k.showBox
}

// HandleDrag feeds one gesture event into the knob.  DragMove deltas
// adjust the value: dx+dy scaled by 1/1000 is added to the current
// value, clamped and quantized, and watchers are called with the
// result.  DragStart and DragEnd toggle the value label.
func (k *ParamKnob) HandleDrag(event DragEvent, x, y int) {
	switch event {
	case DragStart:
		k.showBox = true
	case DragMove:
		k.value.Set(adjust(k.value.Get(), float64(x), float64(y), k.Min, k.Max, k.Steps))
	case DragEnd:
		k.showBox = false
	}
}

// Render draws the knob into a w x h image: the knob circle, the
// marker line from the center to 80% of the radius at the value's
// angle, and 21 tick marks just outside the rim spanning the same
// 300 degree sweep.
func (k *ParamKnob) Render(w, h int) image.Image {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(im, im.Bounds(), &image.Uniform{colorBackground}, image.Point{}, draw.Src)

	min := w
	if h < min {
		min = h
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	r := knobReach * float64(min) / 2

	pen := graphics2d.NewPen(k.KnobColor, 2)
	graphics2d.DrawPath(im, graphics2d.Circle([]float64{cx, cy}, r), pen)

	n := normalize(k.value.Get(), k.Min, k.Max)
	mx, my := pointAt(cx, cy, r*markerReach, valueAngle(n))
	marker := graphics2d.NewPen(k.MarkerColor, 3)
	graphics2d.DrawLine(im, []float64{cx, cy}, []float64{mx, my}, marker)

	tick := graphics2d.NewPen(k.TickColor, 1)
	for i := 0; i < tickCount; i++ {
		a := valueAngle(float64(i) / float64(tickCount-1))
		x0, y0 := pointAt(cx, cy, r*tickInner, a)
		x1, y1 := pointAt(cx, cy, r*tickOuter, a)
		graphics2d.DrawLine(im, []float64{x0, y0}, []float64{x1, y1}, tick)
	}

	return im
}

// RenderValueBox draws the floating value label into a w x h image.
// It returns nil when no drag is in progress and the label is hidden.
func (k *ParamKnob) RenderValueBox(w, h int) (image.Image, error) {
	if !k.showBox {
		return nil, nil
	}
	return k.valueBox.Render(displayValue(k.value.Get()), w, h)
}
