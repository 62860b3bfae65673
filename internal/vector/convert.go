package vector

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// X0Y lifts v onto the ground plane of a y-up 3D space: (x, 0, y).
func (v Vector2f) X0Y() f32.Vec3 {
	return f32.Vec3{v.X, 0, v.Y}
}

// XY0 lifts v onto the z = 0 plane: (x, y, 0).
func (v Vector2f) XY0() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, 0}
}

// FromVec3XZ is the inverse of X0Y; the y component is dropped.
func FromVec3XZ(v f32.Vec3) Vector2f {
	return Vector2f{v[0], v[2]}
}

// FromVec3XY is the inverse of XY0; the z component is dropped.
func FromVec3XY(v f32.Vec3) Vector2f {
	return Vector2f{v[0], v[1]}
}

// Vec2 converts v to the x/image vector type.
func (v Vector2f) Vec2() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// FromVec2 converts an x/image vector to a Vector2f.
func FromVec2(v f32.Vec2) Vector2f {
	return Vector2f{v[0], v[1]}
}

// Fixed converts v to 26.6 fixed point, rounding to the nearest 1/64.
// Components out of range saturate and NaN becomes 0.
func (v Vector2f) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v.X), Y: toFixed(v.Y)}
}

// FromFixed converts a 26.6 fixed point to a vector.
func FromFixed(p fixed.Point26_6) Vector2f {
	return Vector2f{float32(p.X) / 64, float32(p.Y) / 64}
}

func toFixed(f float32) fixed.Int26_6 {
	r := math.Round(float64(f) * 64)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(r)
}
