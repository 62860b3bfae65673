package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalvesAwayFromZero(t *testing.T) {
	assert.Equal(t, float32(3), Round(2.5))
	assert.Equal(t, float32(-3), Round(-2.5))
	assert.Equal(t, float32(2), Round(2.49))
	assert.Equal(t, float32(0), Round(0.4))
	assert.Equal(t, 3, RoundAs[int](2.5))
	assert.Equal(t, int32(-3), RoundAs[int32](-2.5))
}

func TestFloorCeiling(t *testing.T) {
	tests := []struct {
		value        float32
		floor, ceil  float32
		floorI, ceiI int
	}{
		{1.2, 1, 2, 1, 2},
		{-1.2, -2, -1, -2, -1},
		{3, 3, 3, 3, 3},
		{-0.5, -1, 0, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.floor, Floor(tt.value), "Floor(%v)", tt.value)
		assert.Equal(t, tt.ceil, Ceiling(tt.value), "Ceiling(%v)", tt.value)
		assert.Equal(t, tt.floorI, FloorAs[int](tt.value), "FloorAs(%v)", tt.value)
		assert.Equal(t, tt.ceiI, CeilingAs[int](tt.value), "CeilingAs(%v)", tt.value)
	}
}

func TestRoundToMultiple(t *testing.T) {
	tests := []struct {
		name              string
		value, multiplier float32
		floor, ceil, rnd  float32
	}{
		{"seven by five", 7, 5, 5, 10, 5},
		{"eight by five", 8, 5, 5, 10, 10},
		{"exact multiple", 10, 5, 10, 10, 10},
		{"negative", -7, 5, -10, -5, -5},
		{"fractional step", 0.3, 0.25, 0.25, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.floor, FloorMultiple(tt.value, tt.multiplier))
			assert.Equal(t, tt.ceil, CeilingMultiple(tt.value, tt.multiplier))
			assert.Equal(t, tt.rnd, RoundMultiple(tt.value, tt.multiplier))
		})
	}
}

func TestRoundToMultipleAs(t *testing.T) {
	assert.Equal(t, 5, FloorMultipleAs[int](7, 5))
	assert.Equal(t, 10, CeilingMultipleAs[int](7, 5))
	assert.Equal(t, int64(-10), RoundMultipleAs[int64](-7.5, 5))
	// 1 step of 2.5 truncates to 2 in the integer result type.
	assert.Equal(t, 2, RoundMultipleAs[int](3, 2.5))
}

func TestRoundToZeroMultiplier(t *testing.T) {
	assert.True(t, math.IsNaN(float64(CeilingMultiple(7, 0))))
	assert.True(t, math.IsNaN(float64(FloorMultiple(0, 0))))
	assert.True(t, math.IsNaN(float64(RoundMultiple(-3, 0))))
}

func TestRoundingPropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(float64(Round(nan32))))
	assert.True(t, math.IsNaN(float64(Floor(nan32))))
	assert.True(t, math.IsInf(float64(Ceiling(float32(math.Inf(1)))), 1))
}
