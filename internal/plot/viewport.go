package plot

import (
	"gamemath/internal/mathutil"
	"gamemath/internal/vector"
)

// Viewport is the rectangle of vector space shown on the canvas.
// Vector space is y-up, pixel space is y-down.
type Viewport struct {
	Min, Max vector.Vector2f
}

// Square returns a viewport centered on the origin spanning [-extent, extent] on both axes.
func Square(extent float32) Viewport {
	return Viewport{Min: vector.Splat(-extent), Max: vector.Splat(extent)}
}

// ToPixel maps v to pixel coordinates on a w×h target.
func (vp Viewport) ToPixel(v vector.Vector2f, w, h int) vector.Vector2f {
	return vector.New(
		mathutil.Remap(v.X, vp.Min.X, vp.Max.X, 0, float32(w)),
		mathutil.Remap(v.Y, vp.Min.Y, vp.Max.Y, float32(h), 0),
	)
}

// FromPixel is the inverse of ToPixel.
func (vp Viewport) FromPixel(p vector.Vector2f, w, h int) vector.Vector2f {
	return vector.New(
		mathutil.Remap(p.X, 0, float32(w), vp.Min.X, vp.Max.X),
		mathutil.Remap(p.Y, float32(h), 0, vp.Min.Y, vp.Max.Y),
	)
}

// PixelsPerUnit returns the horizontal scale of the mapping.
func (vp Viewport) PixelsPerUnit(w int) float32 {
	return float32(w) / (vp.Max.X - vp.Min.X)
}
