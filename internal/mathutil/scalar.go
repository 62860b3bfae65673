// Package mathutil holds the scalar helpers used throughout the game and
// render code. Everything here is a pure function; degenerate input is
// reported through IEEE-754 NaN/Inf rather than errors.
package mathutil

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits value to [min, max]. min > max is not validated.
func Clamp[T cmp.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates from a to b by t. t is not clamped, so values
// outside [0, 1] extrapolate.
//
// The interpolation is evaluated in single precision and converted back to T.
func Lerp[T Number](a, b T, t float32) T {
	d := float32(b - a)
	return T(float32(a) + float32(d*t))
}

// Min returns the smaller of a and b. Types with their own notion of
// ordering (vectors) provide a Min in their own package.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the bigger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Remap converts value from the [fromA, fromB] range to the [toA, toB] range.
// fromA == fromB divides by zero.
func Remap[T Number](value, fromA, fromB, toA, toB T) T {
	value -= fromA
	value /= fromB - fromA
	return T(value*(toB-toA)) + toA
}

// Sign returns -1 for a negative number and +1 otherwise, zero included.
func Sign(value float32) float32 {
	if value < 0 {
		return -1
	}
	return 1
}

// Sqr returns value*value.
func Sqr[T Number](value T) T {
	return value * value
}

// Sqrt returns the square root of value, NaN for negative input.
func Sqrt(value float32) float32 {
	return float32(math.Sqrt(float64(value)))
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 {
	return radians * radToDeg
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 {
	return degrees * degToRad
}
