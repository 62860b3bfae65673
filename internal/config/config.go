package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gamemath/internal/vector"
)

// Point is a vector as written in config files: [x, y].
type Point [2]float32

func (p Point) Vector() vector.Vector2f {
	return vector.New(p[0], p[1])
}

// Config holds the plot layout and the vectors to draw.
type Config struct {
	Output      string `yaml:"output"`
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`

	// Vector space
	Extent float32 `yaml:"extent"` // half-width of the visible square
	Grid   float32 `yaml:"grid"`   // grid step, 0 for default, negative disables

	// Operations
	Limit   float32 `yaml:"limit"`
	Normal  *Point  `yaml:"normal"`
	Samples []Point `yaml:"samples"`
}

// Load reads a YAML (or JSON) config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Size        int
	Supersample int
}

// Resolve applies flag overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.Output == "" {
		c.Output = "vecplot.webp"
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if !(c.Extent > 0) {
		c.Extent = 4
	}
	if c.Grid == 0 {
		c.Grid = 1
	}
	if !(c.Limit > 0) {
		c.Limit = 2
	}
	if c.Normal == nil {
		c.Normal = &Point{0, 1}
	}
	if len(c.Samples) == 0 {
		c.Samples = defaultSamples()
	}
}

func defaultSamples() []Point {
	return []Point{
		{3, -1},
		{-1.5, -2.5},
		{0.5, 1},
		{-3, 0.5},
	}
}
