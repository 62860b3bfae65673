// Package vector provides Vector2f, a 2D float32 value type used for
// positions and directions, together with the free functions that operate on
// it.
package vector

import (
	"strconv"

	"gamemath/internal/mathutil"
)

// Vector2f is a geometric object with length and direction (value type, stack-allocated).
// NaN components and zero length are valid states.
type Vector2f struct {
	X, Y float32
}

// New returns the vector (x, y).
func New(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Splat returns a vector with both components set to value.
func Splat(value float32) Vector2f {
	return Vector2f{X: value, Y: value}
}

// AxisX returns (1, 0).
func AxisX() Vector2f { return Vector2f{X: 1} }

// AxisY returns (0, 1).
func AxisY() Vector2f { return Vector2f{Y: 1} }

// One returns (1, 1).
func One() Vector2f { return Vector2f{X: 1, Y: 1} }

// Zero returns (0, 0).
func Zero() Vector2f { return Vector2f{} }

// Equal reports whether both components are identical. Same as ==.
func (v Vector2f) Equal(rhs Vector2f) bool {
	return v.X == rhs.X && v.Y == rhs.Y
}

// NotEqual reports whether either component differs. Same as !=.
func (v Vector2f) NotEqual(rhs Vector2f) bool {
	return v.X != rhs.X || v.Y != rhs.Y
}

// Add returns v + rhs.
func (v Vector2f) Add(rhs Vector2f) Vector2f {
	return Vector2f{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns v - rhs.
func (v Vector2f) Sub(rhs Vector2f) Vector2f {
	return Vector2f{v.X - rhs.X, v.Y - rhs.Y}
}

// Scale returns v multiplied by s.
func (v Vector2f) Scale(s float32) Vector2f {
	return Vector2f{float32(v.X * s), float32(v.Y * s)}
}

// Div returns v divided by s.
func (v Vector2f) Div(s float32) Vector2f {
	return Vector2f{v.X / s, v.Y / s}
}

// Pos is unary plus.
func (v Vector2f) Pos() Vector2f {
	return v
}

// Neg returns -v.
func (v Vector2f) Neg() Vector2f {
	return Vector2f{-v.X, -v.Y}
}

// AddAssign adds rhs to v and returns v for chaining.
func (v *Vector2f) AddAssign(rhs Vector2f) *Vector2f {
	v.X += rhs.X
	v.Y += rhs.Y
	return v
}

// SubAssign subtracts rhs from v and returns v.
func (v *Vector2f) SubAssign(rhs Vector2f) *Vector2f {
	v.X -= rhs.X
	v.Y -= rhs.Y
	return v
}

// ScaleAssign multiplies v by s and returns v.
func (v *Vector2f) ScaleAssign(s float32) *Vector2f {
	v.X = float32(v.X * s)
	v.Y = float32(v.Y * s)
	return v
}

// DivAssign divides v by s and returns v.
func (v *Vector2f) DivAssign(s float32) *Vector2f {
	v.X /= s
	v.Y /= s
	return v
}

// Length returns the Euclidean length.
func (v Vector2f) Length() float32 {
	return mathutil.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared length, for comparisons that don't need the root.
func (v Vector2f) LengthSqr() float32 {
	// Explicit conversions keep the products from being fused into an FMA.
	return float32(v.X*v.X) + float32(v.Y*v.Y)
}

func (v Vector2f) String() string {
	return "(" + strconv.FormatFloat(float64(v.X), 'g', -1, 32) + ", " +
		strconv.FormatFloat(float64(v.Y), 'g', -1, 32) + ")"
}
