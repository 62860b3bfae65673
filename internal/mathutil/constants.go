package mathutil

import "math"

// Single-precision constants shared by game and render code.
const (
	// KindaLargeFloat is a "practically infinite" distance that still survives arithmetic.
	KindaLargeFloat float32 = 9999999.0
	// KindaSmallFloat is the zero-length threshold used by vector normalization.
	KindaSmallFloat float32 = 0.0000001

	PiTwo  float32 = 2 * math.Pi
	PiOne  float32 = math.Pi
	PiHalf float32 = math.Pi / 2

	SquareRootTwo   float32 = math.Sqrt2
	SquareRootThree float32 = 1.732050807568877

	// Diagonal lengths of a unit cell in 1, 2 and 3 dimensions.
	Diagonal1D float32 = 1
	Diagonal2D         = SquareRootTwo
	Diagonal3D         = SquareRootThree
)

// Truncated conversion factors. Callers compare angles bit-for-bit against
// data produced with these exact values, so they are not math.Pi/180.
const (
	radToDeg float32 = 57.2958
	degToRad float32 = 0.0174533
)

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float32) float32 {
	d := float32(math.Mod(float64(a-b), 360))
	if d < 0 {
		d += 360
	}
	if d > 180 {
		return 360 - d
	}
	return d
}
