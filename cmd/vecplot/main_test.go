package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gamemath/internal/config"
	"gamemath/internal/vector"
)

func TestRender(t *testing.T) {
	cfg := config.Config{Size: 64, Supersample: 1}
	cfg.Resolve(config.Flags{})

	canvas := render(cfg, zap.NewNop())
	img := canvas.Image()
	require.Equal(t, 64, img.Bounds().Dx())

	// (3, 60) lies off the grid and beyond every arrow; the origin is on both axes.
	assert.Equal(t, background, img.NRGBAAt(3, 60))
	assert.NotEqual(t, background, img.NRGBAAt(32, 32))
}

func TestSamples(t *testing.T) {
	cfg := config.Config{Samples: []config.Point{{1, 2}, {-3, 0}}}
	assert.Equal(t, []vector.Vector2f{vector.New(1, 2), vector.New(-3, 0)}, samples(cfg))
}
