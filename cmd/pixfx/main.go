package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/softglow/pixfx/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `pixfx - apply image transformations

Usage: pixfx <transform> -in <file> -out <file> [options]

Transforms:
  grayscale    Average the channels of every pixel
  invert       Invert every channel
  sepia        Apply the sepia tone matrix
  bw           Stylized black/white via median luminance threshold
  rotate       Rotate 90 degrees clockwise
  decorate     Warm shift + halo vignette + grain (needs -halo and -grain)
  hue          Set hue of every pixel (-value, degrees)
  saturation   Set saturation of every pixel (-value, 0-1)
  lightness    Set lightness of every pixel (-value, 0-1)

Options:
  -in      input image path (required)
  -out     output image path (required)
  -format  output format: png, jpeg, bmp (default png)
  -value   numeric parameter for hue/saturation/lightness
  -halo    halo overlay path (decorate; defaults from config)
  -grain   grain overlay path (decorate; defaults from config)

Configuration is read from pixfx.yaml in the working directory or
$HOME/.config/pixfx, and from PIXFX_* environment variables:
  assets.halo, assets.grain, log_level
`

// config holds the CLI settings resolved from file, environment and defaults.
type config struct {
	HaloPath  string
	GrainPath string
	LogLevel  string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("pixfx %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		fmt.Print(usage)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixfx: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := run(os.Args[1], os.Args[2:], cfg, logger); err != nil {
		logger.Fatal("transform failed", zap.String("transform", os.Args[1]), zap.Error(err))
	}
}

// loadConfig resolves optional settings. A missing config file is fine;
// anything else (malformed yaml, unreadable file) is reported.
func loadConfig() (*config, error) {
	v := viper.New()
	v.SetConfigName("pixfx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/pixfx")
	v.SetEnvPrefix("pixfx")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &config{
		HaloPath:  v.GetString("assets.halo"),
		GrainPath: v.GetString("assets.grain"),
		LogLevel:  v.GetString("log_level"),
	}, nil
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixfx: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func run(transform string, args []string, cfg *config, logger *zap.Logger) error {
	fs := flag.NewFlagSet("pixfx "+transform, flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	out := fs.String("out", "", "output image path")
	format := fs.String("format", "png", "output format: png, jpeg, bmp")
	value := fs.Float64("value", 0, "numeric parameter for hue/saturation/lightness")
	halo := fs.String("halo", cfg.HaloPath, "halo overlay path")
	grain := fs.String("grain", cfg.GrainPath, "grain overlay path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	img, err := imaging.Decode(*in)
	if err != nil {
		return err
	}
	logger.Debug("image decoded",
		zap.String("path", *in),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()))

	result, err := apply(transform, img, *value, *halo, *grain, imaging.NewBufferCache())
	if err != nil {
		return err
	}

	if err := imaging.Encode(result, *format, *out); err != nil {
		return err
	}
	logger.Info("transform applied",
		zap.String("transform", transform),
		zap.String("in", *in),
		zap.String("out", *out),
		zap.Int("width", result.Width()),
		zap.Int("height", result.Height()))
	return nil
}

// apply dispatches to the transform named on the command line.
func apply(name string, img *imaging.Buffer, value float64, haloPath, grainPath string, assets *imaging.BufferCache) (*imaging.Buffer, error) {
	switch name {
	case "grayscale":
		return imaging.Grayscale(img), nil
	case "invert":
		return imaging.Invert(img), nil
	case "sepia":
		return imaging.Sepia(img), nil
	case "bw":
		return imaging.StylizeBW(img), nil
	case "rotate":
		return imaging.Rotate90(img), nil
	case "decorate":
		return decorate(img, haloPath, grainPath, assets)
	case "hue":
		return imaging.SetHue(img, value), nil
	case "saturation":
		return imaging.SetSaturation(img, value), nil
	case "lightness":
		return imaging.SetLightness(img, value), nil
	default:
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
}

// decorate loads the overlay assets through the cache, so repeated filter
// invocations decode each asset once, and fits them to the primary image
// before invoking the composite filter, which requires exact dimension
// matches. FitOverlay returns matching overlays unchanged, so the cached
// buffers are never mutated.
func decorate(img *imaging.Buffer, haloPath, grainPath string, assets *imaging.BufferCache) (*imaging.Buffer, error) {
	if haloPath == "" || grainPath == "" {
		return nil, fmt.Errorf("decorate requires -halo and -grain overlay paths (or assets.halo/assets.grain in config)")
	}
	halo, err := assets.Load(haloPath)
	if err != nil {
		return nil, err
	}
	grain, err := assets.Load(grainPath)
	if err != nil {
		return nil, err
	}
	halo = imaging.FitOverlay(halo, img.Width(), img.Height())
	grain = imaging.FitOverlay(grain, img.Width(), img.Height())
	return imaging.Decorate(img, halo, grain)
}
