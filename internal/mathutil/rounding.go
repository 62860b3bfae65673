package mathutil

import "math"

// Ceiling rounds value towards +Inf.
func Ceiling(value float32) float32 {
	return CeilingAs[float32](value)
}

// Floor rounds value towards -Inf.
func Floor(value float32) float32 {
	return FloorAs[float32](value)
}

// Round rounds value to the nearest whole number, halves away from zero.
func Round(value float32) float32 {
	return RoundAs[float32](value)
}

// CeilingAs rounds value towards +Inf and converts the result to T.
func CeilingAs[T Number](value float32) T {
	return T(math.Ceil(float64(value)))
}

// FloorAs rounds value towards -Inf and converts the result to T.
func FloorAs[T Number](value float32) T {
	return T(math.Floor(float64(value)))
}

// RoundAs rounds value half away from zero and converts the result to T.
func RoundAs[T Number](value float32) T {
	return T(math.Round(float64(value)))
}

// CeilingMultiple rounds value up to a multiple of multiplier: value/multiplier
// is rounded to a whole number and scaled back. A zero multiplier produces Inf
// or NaN.
func CeilingMultiple(value, multiplier float32) float32 {
	return CeilingMultipleAs[float32](value, multiplier)
}

// FloorMultiple rounds value down to a multiple of multiplier.
func FloorMultiple(value, multiplier float32) float32 {
	return FloorMultipleAs[float32](value, multiplier)
}

// RoundMultiple rounds value to the nearest multiple of multiplier, halves away from zero.
func RoundMultiple(value, multiplier float32) float32 {
	return RoundMultipleAs[float32](value, multiplier)
}

// CeilingMultipleAs is CeilingMultiple with the result converted to T.
func CeilingMultipleAs[T Number](value, multiplier float32) T {
	return T(float32(CeilingAs[T](value/multiplier)) * multiplier)
}

// FloorMultipleAs is FloorMultiple with the result converted to T.
func FloorMultipleAs[T Number](value, multiplier float32) T {
	return T(float32(FloorAs[T](value/multiplier)) * multiplier)
}

// RoundMultipleAs is RoundMultiple with the result converted to T.
func RoundMultipleAs[T Number](value, multiplier float32) T {
	return T(float32(RoundAs[T](value/multiplier)) * multiplier)
}
