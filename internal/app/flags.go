package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gpu-life/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      sim.Config
	Device   string
	Scale    int
	HUD      bool
	LogLevel slog.Level
}

// Device kinds accepted by the -device flag.
const (
	DeviceGPU = "gpu"
	DeviceCPU = "cpu"
)

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: sim.DefaultConfig(), Device: DeviceGPU, Scale: 3, HUD: true, LogLevel: slog.LevelInfo}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Width, "w", c.Sim.Width, "grid width in cells")
	fs.IntVar(&c.Sim.Height, "h", c.Sim.Height, "grid height in cells")
	fs.TextVar(&c.Sim.Seed, "seed-mode", c.Sim.Seed, "initial state: random or empty")
	fs.Int64Var(&c.Sim.RandomSeed, "seed", c.Sim.RandomSeed, "seed for random initial state")
	fs.Float64Var(&c.Sim.AliveProbability, "p", c.Sim.AliveProbability, "probability a cell starts alive")
	fs.Float64Var(&c.Sim.TargetFPS, "fps", c.Sim.TargetFPS, "target simulation steps per second")
	fs.TextVar(&c.Sim.Boundary, "boundary", c.Sim.Boundary, "edge policy: wrap or clamp")
	fs.Float64Var(&c.Sim.ReviveRadius, "radius", c.Sim.ReviveRadius, "revive brush half-width in cells")
	fs.StringVar(&c.Device, "device", c.Device, "transition device: gpu or cpu")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Validate checks the application flags and the simulation configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Device != DeviceGPU && c.Device != DeviceCPU {
		errs = append(errs, fmt.Errorf("unknown device %q", c.Device))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if err := c.Sim.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewLogger returns a text logger on stderr at level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
