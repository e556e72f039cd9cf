package app

import (
	"flag"

	"gridlife/pkg/life"
)

// Config represents the command-line parameters for the GUI host.
type Config struct {
	Rows    int
	Cols    int
	Scale   int
	TPS     int
	Seed    int64
	Density float64

	FadeDuration int

	Record string
	DBPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:         192,
		Cols:         256,
		Scale:        3,
		TPS:          15,
		Seed:         42,
		Density:      life.DefaultDensity,
		FadeDuration: 8,
		DBPath:       "gridlife.db",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for randomization")
	fs.IntVar(&c.FadeDuration, "fade", c.FadeDuration, "trail length in generations, 0 disables trails")
	fs.StringVar(&c.Record, "record", c.Record, "record the session under this name")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "recording database path")
}
