//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gpu-life/internal/app"
	"gpu-life/internal/core"
	"gpu-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(app.NewLogger(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	dev, err := app.NewDisplay(cfg.Device)
	if err != nil {
		log.Fatal(err)
	}
	s := sim.New(dev, cfg.Sim, nil)
	if err := s.Start(); err != nil {
		dev.Close()
		log.Fatal(err)
	}

	game := app.New(s, dev, cfg.Scale, cfg.HUD)
	size := s.Size()

	ebiten.SetWindowTitle("gpu-life")
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
