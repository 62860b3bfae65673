package vector

import "gamemath/internal/mathutil"

// Limit reduces the length of v so that it doesn't exceed value.
// value is expected to be >= 0: a zero vector limited to a negative value
// becomes a NaN vector.
func (v *Vector2f) Limit(value float32) {
	length := v.Length()
	if length > value {
		v.ScaleAssign(value / length)
	}
}

// Normalize scales v to a length of 1. A vector shorter than
// mathutil.KindaSmallFloat becomes exactly (0, 0).
func (v *Vector2f) Normalize() {
	length := v.Length()
	if length > mathutil.KindaSmallFloat {
		v.ScaleAssign(1 / length)
	} else {
		v.X, v.Y = 0, 0
	}
}

// NormalizeUnsafe scales v to a length of 1 without the zero-length guard:
// a zero vector becomes a NaN vector.
func (v *Vector2f) NormalizeUnsafe() {
	v.ScaleAssign(1 / v.Length())
}

// Limited returns a copy of v whose length doesn't exceed value.
func (v Vector2f) Limited(value float32) Vector2f {
	v.Limit(value)
	return v
}

// Normalized returns a copy of v with a length of 1, or (0, 0) for a zero vector.
func (v Vector2f) Normalized() Vector2f {
	v.Normalize()
	return v
}

// NormalizedUnsafe returns a copy of v with a length of 1, or a NaN vector for a zero vector.
func (v Vector2f) NormalizedUnsafe() Vector2f {
	v.NormalizeUnsafe()
	return v
}
