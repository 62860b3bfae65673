package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"gamemath/internal/vector"
)

func TestAppendPositionBytes(t *testing.T) {
	got := AppendPosition(nil, vector.New(1, -2))
	want := []byte{
		0x0d, 0x00, 0x00, 0x80, 0x3f, // x = 1
		0x15, 0x00, 0x00, 0x00, 0xc0, // y = -2
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), SizePosition(vector.New(1, -2)))
}

func TestAppendPositionOmitsZero(t *testing.T) {
	assert.Empty(t, AppendPosition(nil, vector.Zero()))
	assert.Equal(t, 0, SizePosition(vector.Zero()))

	onlyY := AppendPosition(nil, vector.AxisY())
	assert.Equal(t, []byte{0x15, 0x00, 0x00, 0x80, 0x3f}, onlyY)
}

func TestPositionRoundTripKeepsSpecialValues(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())

	got, err := ConsumePosition(AppendPosition(nil, vector.New(negZero, nan)))
	require.NoError(t, err)
	assert.True(t, math.Signbit(float64(got.X)))
	assert.True(t, math.IsNaN(float64(got.Y)))

	inf := vector.New(float32(math.Inf(1)), -3.5)
	got, err = ConsumePosition(AppendPosition(nil, inf))
	require.NoError(t, err)
	assert.Equal(t, inf, got)
}

func TestConsumePositionSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, 300)
	b = AppendPosition(b, vector.New(4, 5))
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("ignored"))

	got, err := ConsumePosition(b)
	require.NoError(t, err)
	assert.Equal(t, vector.New(4, 5), got)
}

func TestConsumePositionLastValueWins(t *testing.T) {
	b := AppendPosition(nil, vector.New(1, 2))
	b = AppendPosition(b, vector.New(3, 0))

	got, err := ConsumePosition(b)
	require.NoError(t, err)
	assert.Equal(t, vector.New(3, 2), got)
}

func TestConsumePositionMalformed(t *testing.T) {
	full := AppendPosition(nil, vector.New(1, 2))

	wrongType := protowire.AppendTag(nil, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)

	tests := []struct {
		name string
		in   []byte
	}{
		{"truncated float", full[:3]},
		{"truncated tag", []byte{0x80}},
		{"wrong wire type", wrongType},
		{"field zero", []byte{0x05, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConsumePosition(tt.in)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	points := []vector.Vector2f{
		vector.New(0, 0),
		vector.New(1.5, -2),
		vector.AxisX(),
		vector.New(-100, 250.25),
	}

	got, err := ConsumePath(AppendPath(nil, points))
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestConsumePathEmpty(t *testing.T) {
	got, err := ConsumePath(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConsumePathBadPoint(t *testing.T) {
	b := AppendPath(nil, []vector.Vector2f{vector.One()})
	b = protowire.AppendTag(b, fieldPoints, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0x0d, 0x00})

	_, err := ConsumePath(b)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "point 1")
}

func TestConsumePathWrongType(t *testing.T) {
	b := protowire.AppendTag(nil, fieldPoints, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 0)

	_, err := ConsumePath(b)
	assert.ErrorIs(t, err, ErrMalformed)
}
