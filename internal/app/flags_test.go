package app

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"gpu-life/internal/core"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-w", "64", "-h", "48",
		"-seed-mode", "empty",
		"-boundary", "clamp",
		"-fps", "30",
		"-radius", "3",
		"-scale", "2",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim.Width != 64 || cfg.Sim.Height != 48 {
		t.Fatalf("size = %dx%d", cfg.Sim.Width, cfg.Sim.Height)
	}
	if cfg.Sim.Seed != core.SeedEmpty || cfg.Sim.Boundary != core.BoundaryClamp {
		t.Fatalf("enums = %v %v", cfg.Sim.Seed, cfg.Sim.Boundary)
	}
	if cfg.Sim.TargetFPS != 30 || cfg.Sim.ReviveRadius != 3 || cfg.Scale != 2 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("log level = %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("parsed config invalid: %v", err)
	}
}

func TestBindRejectsUnknownBoundary(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-boundary", "mirror"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateDeviceAndScale(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cfg.Device = "vulkan"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown device")
	}
	cfg = NewConfig()
	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero scale")
	}
	cfg = NewConfig()
	cfg.Device = DeviceCPU
	cfg.Sim.Width = -4
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid grid")
	}
}
