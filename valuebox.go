package knobkit

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/jphsd/graphics2d"
)

// ValueBox is the small bordered label that shows a knob's numeric
// value while the user is dragging it.
type ValueBox struct {
	// Fg, Bg and Border colors.  NewValueBox fills in the package
	// defaults.
	Fg     color.Color
	Bg     color.Color
	Border color.Color

	// CornerRadius is the border's corner rounding in pixels.
	CornerRadius float64

	fonts *Fonts
}

// NewValueBox creates a ValueBox using the given Fonts.
func NewValueBox(fonts *Fonts) *ValueBox {
	return &ValueBox{
		Fg:           colorActive,
		Bg:           colorBackground,
		Border:       colorActive,
		CornerRadius: 6,
		fonts:        fonts,
	}
}

// Render draws the label for value into a w x h image: a
// rounded-rectangle border around the value's default numeric text
// representation, centered, with the face shrunk as needed to fit.
func (b *ValueBox) Render(value float64, w, h int) (image.Image, error) {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(im, im.Bounds(), &image.Uniform{b.Bg}, image.Point{}, draw.Src)

	pen := graphics2d.NewPen(b.Border, 1.5)
	inset := 1.0
	drawRoundedRect(im, inset, inset, float64(w)-inset, float64(h)-inset, b.CornerRadius, pen)

	s := strconv.FormatFloat(value, 'g', -1, 64)
	face, err := b.fonts.fitFace(s, w, h)
	if err != nil {
		return nil, err
	}

	fd := b.fonts.Drawer()
	fd.Src = &image.Uniform{b.Fg}
	fd.Face = face
	fd.Dst = im
	drawCenteredString(fd, s, w/2, h/2)

	return im, nil
}

// drawRoundedRect strokes a rounded-rectangle border from x0, y0 to
// x1, y1 using four edge lines and four quarter arcs.
func drawRoundedRect(im draw.Image, x0, y0, x1, y1, r float64, pen *graphics2d.Pen) {
	graphics2d.DrawLine(im, []float64{x0 + r, y0}, []float64{x1 - r, y0}, pen)
	graphics2d.DrawLine(im, []float64{x1, y0 + r}, []float64{x1, y1 - r}, pen)
	graphics2d.DrawLine(im, []float64{x1 - r, y1}, []float64{x0 + r, y1}, pen)
	graphics2d.DrawLine(im, []float64{x0, y1 - r}, []float64{x0, y0 + r}, pen)

	// Quarter arcs sweep clockwise from a start point about a
	// center, matching the y-down coordinate convention.
	graphics2d.DrawArc(im, []float64{x1 - r, y0}, []float64{x1 - r, y0 + r}, math.Pi/2, pen)
	graphics2d.DrawArc(im, []float64{x1, y1 - r}, []float64{x1 - r, y1 - r}, math.Pi/2, pen)
	graphics2d.DrawArc(im, []float64{x0 + r, y1}, []float64{x0 + r, y1 - r}, math.Pi/2, pen)
	graphics2d.DrawArc(im, []float64{x0, y0 + r}, []float64{x0 + r, y0 + r}, math.Pi/2, pen)
}
