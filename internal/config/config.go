// Package config loads and validates the driver-level configuration: window
// geometry, colors, zoom behavior, and growth pacing. The growth engine never
// sees this; it receives only the scalar tunables it needs, already checked.
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file.
type Config struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	ToothpickLength    float64 `yaml:"toothpick_length"`
	ToothpickThickness float64 `yaml:"toothpick_thickness"`
	ToothpickColor     []uint8 `yaml:"toothpick_color"`
	BackgroundColor    []uint8 `yaml:"background_color"`

	MaxGenerations       int     `yaml:"max_generations"`
	GenerationsPerSecond float64 `yaml:"generations_per_second"`

	AutoZoom    bool    `yaml:"auto_zoom_enabled"`
	ZoomPadding float64 `yaml:"zoom_padding"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		WindowWidth:          1000,
		WindowHeight:         800,
		ToothpickLength:      20,
		ToothpickThickness:   2,
		ToothpickColor:       []uint8{255, 255, 255},
		BackgroundColor:      []uint8{0, 0, 0},
		MaxGenerations:       50,
		GenerationsPerSecond: 2,
		AutoZoom:             true,
		ZoomPadding:          50,
		ZoomSpeed:            0.1,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects configurations the engine and driver cannot run with. The
// engine assumes a positive finite length as a precondition, so the check
// happens here, before any simulation is constructed.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if !(c.ToothpickLength > 0) || math.IsInf(c.ToothpickLength, 0) {
		return fmt.Errorf("toothpick_length must be a positive finite number, got %v", c.ToothpickLength)
	}
	if c.ToothpickThickness <= 0 {
		return fmt.Errorf("toothpick_thickness must be positive, got %v", c.ToothpickThickness)
	}
	if len(c.ToothpickColor) != 3 {
		return fmt.Errorf("toothpick_color must have 3 components, got %d", len(c.ToothpickColor))
	}
	if len(c.BackgroundColor) != 3 {
		return fmt.Errorf("background_color must have 3 components, got %d", len(c.BackgroundColor))
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("max_generations must be non-negative, got %d", c.MaxGenerations)
	}
	if c.GenerationsPerSecond <= 0 {
		return fmt.Errorf("generations_per_second must be positive, got %v", c.GenerationsPerSecond)
	}
	if c.ZoomPadding < 0 {
		return fmt.Errorf("zoom_padding must be non-negative, got %v", c.ZoomPadding)
	}
	if c.ZoomSpeed <= 0 || c.ZoomSpeed > 1 {
		return fmt.Errorf("zoom_speed must be in (0, 1], got %v", c.ZoomSpeed)
	}
	return nil
}

// Colors converts the RGB triples to concrete colors. Validate must have
// passed first.
func (c Config) Colors() (fg, bg color.RGBA) {
	fg = color.RGBA{R: c.ToothpickColor[0], G: c.ToothpickColor[1], B: c.ToothpickColor[2], A: 255}
	bg = color.RGBA{R: c.BackgroundColor[0], G: c.BackgroundColor[1], B: c.BackgroundColor[2], A: 255}
	return fg, bg
}
