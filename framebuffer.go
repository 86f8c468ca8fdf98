package knobkit

import (
	"image"
	"log/slog"

	"maze.io/x/pixel/pixelcolor"
)

// Framebuffer is an RGB565 pixel sink for pushing rendered widgets to
// small hardware displays, which commonly take 16-bit color.  Blit
// converts an image and copies it into place; Bytes exposes the raw
// buffer for whatever transport drives the panel.
//
// Most panels are little-endian, but some knob displays want the high
// byte first; set BigEndian for those.
type Framebuffer struct {
	// BigEndian selects high-byte-first pixel layout.
	BigEndian bool

	width, height int
	pix           []byte
}

// NewFramebuffer creates a little-endian RGB565 framebuffer of the
// given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*2),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Blit converts im to RGB565 and copies it with its upper-left corner
// at xoff, yoff.  Pixels that fall outside the framebuffer are
// clipped.  Blitting a sub-region is explicitly allowed; writing a
// knob's worth of pixels leaves the rest of the buffer untouched.
func (f *Framebuffer) Blit(im image.Image, xoff, yoff int) {
	b := im.Bounds()
	slog.Debug("Blit", "xoff", xoff, "yoff", yoff, "width", b.Dx(), "height", b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := yoff + y - b.Min.Y
		if fy < 0 || fy >= f.height {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := xoff + x - b.Min.X
			if fx < 0 || fx >= f.width {
				continue
			}

			pixel := pixelcolor.ToRGB565(im.At(x, y))
			lowByte := byte(pixel & 0xff)
			highByte := byte(pixel >> 8)

			i := (fy*f.width + fx) * 2
			if f.BigEndian {
				f.pix[i], f.pix[i+1] = highByte, lowByte
			} else {
				f.pix[i], f.pix[i+1] = lowByte, highByte
			}
		}
	}
}

// Bytes returns the framebuffer's backing buffer, two bytes per pixel
// in row-major order.  The slice aliases the framebuffer; a following
// Blit changes its contents.
func (f *Framebuffer) Bytes() []byte {
	return f.pix
}
