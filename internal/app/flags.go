package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Density float64
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 60, Height: 40, Density: 0.3, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern to seed (empty for a blank grid)")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
}
