package sim

import (
	"errors"
	"fmt"
	"strconv"

	"gpu-life/internal/core"
	"gpu-life/internal/kernel"
	"gpu-life/internal/seed"
)

// Config is consumed when a simulation enters Running.
type Config struct {
	Width  int
	Height int

	Seed       core.SeedMode
	RandomSeed int64

	// AliveProbability is used by random seeding.
	AliveProbability float64

	TargetFPS float64
	Boundary  core.Boundary

	// ReviveRadius is the half-width of the revive brush in cells.
	ReviveRadius float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            256,
		Height:           256,
		Seed:             core.SeedRandom,
		RandomSeed:       42,
		AliveProbability: seed.DefaultAliveProbability,
		TargetFPS:        144,
		Boundary:         core.BoundaryWrap,
		ReviveRadius:     kernel.DefaultReviveRadius,
	}
}

// Size returns the grid dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Validate reports every field that cannot be used to start a simulation.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("target fps %v must be positive", c.TargetFPS))
	}
	if c.AliveProbability < 0 || c.AliveProbability > 1 {
		errs = append(errs, fmt.Errorf("alive probability %v outside [0, 1]", c.AliveProbability))
	}
	if c.ReviveRadius < 0 {
		errs = append(errs, fmt.Errorf("revive radius %v must not be negative", c.ReviveRadius))
	}
	if c.Seed != core.SeedRandom && c.Seed != core.SeedEmpty {
		errs = append(errs, fmt.Errorf("unknown seed mode %v", c.Seed))
	}
	if c.Boundary != core.BoundaryWrap && c.Boundary != core.BoundaryClamp {
		errs = append(errs, fmt.Errorf("unknown boundary policy %v", c.Boundary))
	}
	return errors.Join(errs...)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; Validate catches the rest.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok {
		var m core.SeedMode
		if err := m.UnmarshalText([]byte(v)); err == nil {
			c.Seed = m
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RandomSeed = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveProbability = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TargetFPS = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		var b core.Boundary
		if err := b.UnmarshalText([]byte(v)); err == nil {
			c.Boundary = b
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ReviveRadius = parsed
		}
	}
	return c
}
