/*
   Copyright 2021 Google LLC

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       https://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package knobkit provides rotary-knob UI controls for audio-plugin
// style interfaces: a parameter knob with a pointer marker and tick
// marks, a gauge knob that fills an arc in proportion to its value,
// and a small value-display label shown while a knob is being
// dragged.
//
// The widgets render into plain draw.Image pixel buffers and consume
// drag events; composition, layout and hit-testing belong to whatever
// framework is hosting them.  The host feeds pointer activity through
// a DragTracker (or calls HandleDrag directly) and blits the rendered
// images wherever it likes.  See cmd/knobdemo for an ebiten host and
// Framebuffer for pushing widgets to RGB565 hardware displays.
package knobkit

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Fonts holds the parsed font and face used for value labels.  One
// Fonts can be shared by any number of widgets.
type Fonts struct {
	font       *opentype.Font
	face       font.Face
	fontdrawer *font.Drawer
}

// DefaultFonts loads the Go Regular face at a size suitable for knob
// labels.
//
// TODO(strudel): make it easy to supply a different typeface.
func DefaultFonts() (*Fonts, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: 12,
		DPI:  150,
	})
	if err != nil {
		return nil, err
	}

	return &Fonts{
		font: f,
		face: face,
		fontdrawer: &font.Drawer{
			Src:  &image.Uniform{color.RGBA{255, 255, 255, 255}},
			Face: face,
		},
	}, nil
}

// Drawer returns a font.Drawer configured for writing label text.
func (f *Fonts) Drawer() font.Drawer {
	return font.Drawer{
		Src:  f.fontdrawer.Src,
		Face: f.face,
	}
}

// Face returns the current font.Face in use for label text.
func (f *Fonts) Face() font.Face {
	return f.face
}

// fitFace returns a face sized so that s fits within 85% of a w x h
// box, shrinking from the base size until it does.
func (f *Fonts) fitFace(s string, w, h int) (font.Face, error) {
	size := 12.0

	mx26 := fixed.I(int(float64(w) * 0.85))
	my26 := fixed.I(int(float64(h) * 0.85))

	for {
		face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
			Size: size,
			DPI:  150,
		})
		if err != nil {
			return nil, err
		}

		d := font.Drawer{Face: face}
		bounds, _ := d.BoundString(s)
		width := bounds.Max.X - bounds.Min.X
		height := bounds.Max.Y - bounds.Min.Y

		if (width > mx26 || height > my26) && size >= 1 {
			size = size * 0.8
			continue
		}

		// Below 1pt we give up shrinking; a degenerate box gets
		// the smallest face rather than an endless loop.
		return face, nil
	}
}

// drawCenteredString writes s with its center at x, y.
func drawCenteredString(fd font.Drawer, s string, x, y int) {
	bounds, _ := fd.BoundString(s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	fd.Dot = freetype.Pt(x-w/2, y+h/2)
	fd.DrawString(s)
}
