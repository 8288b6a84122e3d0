package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"rotca/internal/sims/rotation"
)

// EnvPrefix namespaces the environment variables read by LoadEnv.
const EnvPrefix = "ROTCA_"

// Config represents the command-line parameters for the application. Values
// come from defaults, then ROTCA_* environment variables, then flags.
type Config struct {
	Sim    string  `env:"SIM"`
	Width  int     `env:"WIDTH"`
	Height int     `env:"HEIGHT"`
	Circle bool    `env:"CIRCLE"`
	Radius int     `env:"RADIUS"`
	Fill   float64 `env:"FILL"`
	Scale  int     `env:"SCALE"`
	TPS    int     `env:"TPS"`
	Seed   int64   `env:"SEED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := rotation.DefaultConfig()
	return &Config{
		Sim:    "rotation",
		Width:  d.Width,
		Height: d.Height,
		Circle: d.Circular,
		Radius: d.Radius,
		Fill:   d.Fill,
		Scale:  4,
		TPS:    30,
		Seed:   d.Seed,
	}
}

// LoadEnv overrides the current values with any ROTCA_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (rounded down to even)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (rounded down to even)")
	fs.BoolVar(&c.Circle, "circle", c.Circle, "seed only the quarter disk of -radius around the origin")
	fs.IntVar(&c.Radius, "radius", c.Radius, "seed disk radius")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "probability that a seeded cell starts alive")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "half-steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// SimOptions renders the simulation settings as the string map accepted by
// core.Factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"circle": strconv.FormatBool(c.Circle),
		"radius": strconv.Itoa(c.Radius),
		"fill":   strconv.FormatFloat(c.Fill, 'f', -1, 64),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}
