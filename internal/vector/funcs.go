package vector

import (
	"math"

	"gamemath/internal/mathutil"
)

// Clamp clamps each component of value between the matching components of min and max.
func Clamp(value, min, max Vector2f) Vector2f {
	return Vector2f{
		mathutil.Clamp(value.X, min.X, max.X),
		mathutil.Clamp(value.Y, min.Y, max.Y),
	}
}

// Distance returns the distance between a and b.
func Distance(a, b Vector2f) float32 {
	return b.Sub(a).Length()
}

// DistanceSqr returns the squared distance between a and b.
func DistanceSqr(a, b Vector2f) float32 {
	return b.Sub(a).LengthSqr()
}

// Divide divides a by b component-wise.
func Divide(a, b Vector2f) Vector2f {
	return Vector2f{a.X / b.X, a.Y / b.Y}
}

// Multiply multiplies a by b component-wise.
func Multiply(a, b Vector2f) Vector2f {
	return Vector2f{float32(a.X * b.X), float32(a.Y * b.Y)}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector2f) float32 {
	return float32(a.X*b.X) + float32(a.Y*b.Y)
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector2f) Vector2f {
	return Vector2f{mathutil.Min(a.X, b.X), mathutil.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector2f) Vector2f {
	return Vector2f{mathutil.Max(a.X, b.X), mathutil.Max(a.Y, b.Y)}
}

// Lerp interpolates component-wise from a to b by t (unclamped).
func Lerp(a, b Vector2f, t float32) Vector2f {
	return Vector2f{mathutil.Lerp(a.X, b.X, t), mathutil.Lerp(a.Y, b.Y, t)}
}

// Perpendicular rotates v 90° clockwise in a y-up frame: (x, y) -> (y, -x).
func Perpendicular(v Vector2f) Vector2f {
	return Vector2f{v.Y, -v.X}
}

// Reflect reflects v off the surface described by normal: v - 2(v·n)n.
// normal must be unit length; it is not normalized here.
func Reflect(v, normal Vector2f) Vector2f {
	dot2 := -2 * Dot(v, normal)
	return Multiply(Splat(dot2), normal).Add(v)
}

// Angle returns the heading of v in degrees, counter-clockwise from +X.
func Angle(v Vector2f) float32 {
	return mathutil.ToDegrees(float32(math.Atan2(float64(v.Y), float64(v.X))))
}
