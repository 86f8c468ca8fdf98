package knobkit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(im, im.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return im
}

func TestFramebufferBlit(t *testing.T) {
	// Pure red is 0xf800 in RGB565, which makes byte order visible.
	fb := NewFramebuffer(2, 1)
	fb.Blit(solidImage(2, 1, color.RGBA{255, 0, 0, 255}), 0, 0)
	assert.Equal(t, []byte{0x00, 0xf8, 0x00, 0xf8}, fb.Bytes())
}

func TestFramebufferBlitBigEndian(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.BigEndian = true
	fb.Blit(solidImage(1, 1, color.RGBA{255, 0, 0, 255}), 0, 0)
	assert.Equal(t, []byte{0xf8, 0x00}, fb.Bytes())
}

func TestFramebufferBlitOffset(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Blit(solidImage(1, 1, color.RGBA{255, 255, 255, 255}), 1, 1)

	// Only the bottom-right pixel is touched.
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xff, 0xff,
	}, fb.Bytes())
}

func TestFramebufferBlitClips(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	// Oversized and out-of-range blits clip instead of panicking.
	fb.Blit(solidImage(4, 4, color.RGBA{255, 255, 255, 255}), 1, 1)
	fb.Blit(solidImage(2, 2, color.RGBA{255, 255, 255, 255}), -5, -5)
	fb.Blit(solidImage(2, 2, color.RGBA{255, 255, 255, 255}), 10, 10)

	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xff, 0xff,
	}, fb.Bytes())
}
