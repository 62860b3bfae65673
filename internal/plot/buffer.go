package plot

import (
	"image"
	"image/color"
)

// FrameBuffer holds the plot target as a flat RGBA slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a transparent color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Fill sets every pixel to c.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// Set writes c at (x, y). Out-of-bounds writes are dropped.
func (fb *FrameBuffer) Set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// At returns the color at (x, y), transparent when out of bounds.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.NRGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image wraps the buffer as an NRGBA image without copying.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
