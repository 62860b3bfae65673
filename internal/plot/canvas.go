// Package plot draws vectors into an image for visual inspection of the
// vector math and writes the result as WebP or TGA.
package plot

import (
	"image"
	"image/color"

	"gamemath/internal/mathutil"
	"gamemath/internal/vector"
)

// Canvas draws in vector space onto a frame buffer.
type Canvas struct {
	fb *FrameBuffer
	vp Viewport
}

// NewCanvas returns a transparent w×h canvas showing vp.
func NewCanvas(w, h int, vp Viewport) *Canvas {
	return &Canvas{fb: NewFrameBuffer(w, h), vp: vp}
}

// Buffer returns the frame buffer drawn into.
func (c *Canvas) Buffer() *FrameBuffer { return c.fb }

// Viewport returns the region of vector space the canvas shows.
func (c *Canvas) Viewport() Viewport { return c.vp }

func (c *Canvas) Image() *image.NRGBA { return c.fb.Image() }

func (c *Canvas) Clear(col color.NRGBA) {
	c.fb.Fill(col)
}

func (c *Canvas) toPixel(v vector.Vector2f) vector.Vector2f {
	return c.vp.ToPixel(v, c.fb.Width, c.fb.Height)
}

// Point draws a filled disc of radius pixels centered on v.
func (c *Canvas) Point(v vector.Vector2f, radius int, col color.NRGBA) {
	if !finite(v) {
		return
	}
	p := c.toPixel(v)
	cx, cy := mathutil.FloorAs[int](p.X), mathutil.FloorAs[int](p.Y)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.fb.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// Line draws a segment from a to b, sampling every half pixel of the part
// that lies inside the frame. Segments with non-finite endpoints are skipped.
func (c *Canvas) Line(a, b vector.Vector2f, col color.NRGBA) {
	if !finite(a) || !finite(b) {
		return
	}
	pa, pb := c.toPixel(a), c.toPixel(b)
	if !finite(pa) || !finite(pb) {
		return
	}
	pa, pb, ok := clip(pa, pb, float64(c.fb.Width), float64(c.fb.Height))
	if !ok {
		return
	}
	steps := mathutil.Max(mathutil.CeilingAs[int](vector.Distance(pa, pb)*2), 1)
	for i := 0; i <= steps; i++ {
		p := vector.Lerp(pa, pb, float32(i)/float32(steps))
		c.fb.Set(mathutil.FloorAs[int](p.X), mathutil.FloorAs[int](p.Y), col)
	}
}

// Arrow draws dir starting at from, with a head sized in pixels.
// A zero-length dir is drawn as a point.
func (c *Canvas) Arrow(from, dir vector.Vector2f, col color.NRGBA) {
	const headPixels = 8

	tip := from.Add(dir)
	c.Line(from, tip, col)

	unit := dir.Normalized()
	if unit == vector.Zero() {
		c.Point(from, 2, col)
		return
	}

	head := mathutil.Min(headPixels/c.vp.PixelsPerUnit(c.fb.Width), dir.Length()/2)
	back := tip.Sub(unit.Scale(head))
	side := vector.Perpendicular(unit).Scale(head / 2)
	c.Line(tip, back.Add(side), col)
	c.Line(tip, back.Sub(side), col)
}

// Grid draws lines every step units, aligned to multiples of step.
// An axis that would get more lines than it has pixels is left bare.
func (c *Canvas) Grid(step float32, col color.NRGBA) {
	if !(step > 0) {
		return
	}
	lo, hi := c.vp.Min, c.vp.Max
	if first, last, ok := gridRange(lo.X, hi.X, step, c.fb.Width); ok {
		for i := first; i <= last; i++ {
			x := float32(i) * step
			c.Line(vector.New(x, lo.Y), vector.New(x, hi.Y), col)
		}
	}
	if first, last, ok := gridRange(lo.Y, hi.Y, step, c.fb.Height); ok {
		for i := first; i <= last; i++ {
			y := float32(i) * step
			c.Line(vector.New(lo.X, y), vector.New(hi.X, y), col)
		}
	}
}

// maxGridIndex keeps grid indices within the integers float32 holds exactly.
const maxGridIndex = 1 << 24

// gridRange returns the indices of the first and last multiples of step in
// [lo, hi]. ok is false when there would be more than limit lines.
func gridRange(lo, hi, step float32, limit int) (first, last int, ok bool) {
	a, b := lo/step, hi/step
	if !(a >= -maxGridIndex && b <= maxGridIndex) {
		return 0, 0, false
	}
	first, last = mathutil.CeilingAs[int](a), mathutil.FloorAs[int](b)
	if last-first >= limit {
		return 0, 0, false
	}
	return first, last, true
}

// Axes draws the x and y axes through the origin.
func (c *Canvas) Axes(col color.NRGBA) {
	lo, hi := c.vp.Min, c.vp.Max
	c.Line(vector.New(lo.X, 0), vector.New(hi.X, 0), col)
	c.Line(vector.New(0, lo.Y), vector.New(0, hi.Y), col)
}

// clip trims the pixel-space segment a-b to the [0, w]×[0, h] frame
// (Liang-Barsky). ok is false when no part of the segment is inside.
func clip(a, b vector.Vector2f, w, h float64) (vector.Vector2f, vector.Vector2f, bool) {
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, ax},
		{dx, w - ax},
		{-dy, ay},
		{dy, h - ay},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}

	at := func(t float64) vector.Vector2f {
		return vector.New(float32(ax+dx*t), float32(ay+dy*t))
	}
	return at(t0), at(t1), true
}

func finite(v vector.Vector2f) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float32) bool {
	return f-f == 0
}
