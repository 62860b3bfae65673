package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"go.uber.org/zap"

	"gamemath/internal/config"
	"gamemath/internal/plot"
	"gamemath/internal/vector"
	"gamemath/internal/wire"
)

var (
	background = color.NRGBA{24, 24, 28, 255}
	gridColor  = color.NRGBA{52, 52, 60, 255}
	axisColor  = color.NRGBA{110, 110, 120, 255}
	normalCol  = color.NRGBA{240, 240, 240, 255}
	sampleCol  = color.NRGBA{90, 160, 255, 255}
	limitCol   = color.NRGBA{255, 200, 60, 255}
	unitCol    = color.NRGBA{120, 230, 120, 255}
	perpCol    = color.NRGBA{200, 120, 255, 255}
	reflectCol = color.NRGBA{255, 90, 90, 255}
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a YAML or JSON config file")
	output := flag.String("output", "", "Output image, .webp or .tga (default: vecplot.webp)")
	size := flag.Int("size", 0, "Output size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	pathFile := flag.String("path", "", "Also write the samples as a protobuf Path message to this file")
	verbose := flag.Bool("verbose", false, "Log every drawn vector")

	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("loading config", zap.Error(err))
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Output:      *output,
		Size:        *size,
		Supersample: *supersample,
	})

	start := time.Now()
	canvas := render(cfg, logger)
	img := plot.Downsample(canvas.Image(), cfg.Supersample)

	if err := plot.Save(cfg.Output, img); err != nil {
		logger.Error("saving plot", zap.Error(err))
		os.Exit(1)
	}

	if *pathFile != "" {
		data := wire.AppendPath(nil, samples(cfg))
		if err := os.WriteFile(*pathFile, data, 0644); err != nil {
			logger.Error("writing sample path", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("sample path written", zap.String("path", *pathFile), zap.Int("bytes", len(data)))
	}

	logger.Info("plot written",
		zap.String("output", cfg.Output),
		zap.Int("size", cfg.Size),
		zap.Int("samples", len(cfg.Samples)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// render draws every sample with its limited, normalized, perpendicular and
// reflected counterparts.
func render(cfg config.Config, logger *zap.Logger) *plot.Canvas {
	px := cfg.Size * cfg.Supersample
	canvas := plot.NewCanvas(px, px, plot.Square(cfg.Extent))
	canvas.Clear(background)
	if cfg.Grid > 0 {
		canvas.Grid(cfg.Grid, gridColor)
	}
	canvas.Axes(axisColor)

	normal := cfg.Normal.Vector().Normalized()
	canvas.Arrow(vector.Zero(), normal, normalCol)

	for _, v := range samples(cfg) {
		limited := v.Limited(cfg.Limit)
		unit := v.Normalized()
		perp := vector.Perpendicular(unit)
		reflected := vector.Reflect(v, normal)

		canvas.Arrow(vector.Zero(), v, sampleCol)
		canvas.Arrow(vector.Zero(), limited, limitCol)
		canvas.Arrow(vector.Zero(), unit, unitCol)
		canvas.Arrow(vector.Zero(), perp, perpCol)
		canvas.Arrow(vector.Zero(), reflected, reflectCol)

		logger.Debug("sample",
			zap.Stringer("vector", v),
			zap.Float32("length", v.Length()),
			zap.Stringer("limited", limited),
			zap.Stringer("normalized", unit),
			zap.Stringer("perpendicular", perp),
			zap.Stringer("reflected", reflected),
			zap.Float32("angle", vector.Angle(v)),
		)
	}

	return canvas
}

func samples(cfg config.Config) []vector.Vector2f {
	vs := make([]vector.Vector2f, len(cfg.Samples))
	for i, s := range cfg.Samples {
		vs[i] = s.Vector()
	}
	return vs
}
