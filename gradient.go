package knobkit

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient blends across an ordered list of color stops.  Stops are
// spaced evenly; lookups between stops interpolate in Lab space,
// which avoids the muddy midpoints that plain RGB interpolation
// produces.
type Gradient struct {
	stops []colorful.Color
}

// NewGradient builds a Gradient from a list of colors.  A single
// color yields a flat gradient; an empty list yields black.
func NewGradient(colors ...color.Color) *Gradient {
	g := &Gradient{}
	for _, c := range colors {
		cc, ok := colorful.MakeColor(c)
		if !ok {
			// Fully transparent colors have no meaningful hue.
			cc = colorful.Color{}
		}
		g.stops = append(g.stops, cc)
	}
	return g
}

// At returns the gradient color at position t, where t runs from 0 at
// the first stop to 1 at the last.  t is clamped to [0, 1].
func (g *Gradient) At(t float64) color.Color {
	switch len(g.stops) {
	case 0:
		return color.Black
	case 1:
		return g.stops[0]
	}

	t = clamp(t, 0, 1)
	f := t * float64(len(g.stops)-1)
	i := int(f)
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	return g.stops[i].BlendLab(g.stops[i+1], f-float64(i)).Clamped()
}
