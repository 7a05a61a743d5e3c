package fractal

import (
	"strconv"

	"toothpick-fractal/internal/core"
)

// Config holds the growth-rule tunables. Length must be positive and finite;
// the Sim assumes that precondition and performs no validation of its own.
type Config struct {
	// Length is the uniform toothpick length, fixed for the whole run.
	Length float64

	// MaxGenerations is the upper bound the driver enforces before calling
	// Step again. The engine itself never stops growing.
	MaxGenerations int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Length:         20,
		MaxGenerations: 50,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable or non-positive values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["toothpick_length"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Length = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
