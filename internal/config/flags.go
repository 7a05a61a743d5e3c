package config

import "flag"

// Flags represents the command-line parameters for the application. Values
// left at their zero defaults do not override the file configuration.
type Flags struct {
	Path           string
	Length         float64
	MaxGenerations int
	Rate           float64
}

// NewFlags returns a Flags populated with "unset" sentinels.
func NewFlags() *Flags {
	return &Flags{MaxGenerations: -1}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", f.Path, "path to YAML config file")
	fs.Float64Var(&f.Length, "length", f.Length, "toothpick length (overrides config)")
	fs.IntVar(&f.MaxGenerations, "max-gen", f.MaxGenerations, "generation limit (overrides config)")
	fs.Float64Var(&f.Rate, "gps", f.Rate, "generations per second (overrides config)")
}

// Apply overlays any explicitly set flag values onto the configuration.
func (f *Flags) Apply(c Config) Config {
	if f.Length > 0 {
		c.ToothpickLength = f.Length
	}
	if f.MaxGenerations >= 0 {
		c.MaxGenerations = f.MaxGenerations
	}
	if f.Rate > 0 {
		c.GenerationsPerSecond = f.Rate
	}
	return c
}
