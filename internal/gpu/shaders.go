// Package gpu evaluates the transition kernel as a Kage fragment program on
// ebiten images. The device itself is only built with the ebiten tag; the
// program sources are always available.
package gpu

import (
	_ "embed"
	"math"

	"gpu-life/internal/core"
	"gpu-life/internal/kernel"
)

var (
	//go:embed shaders/transition.kage
	transitionSource []byte

	//go:embed shaders/display.kage
	displaySource []byte
)

// TransitionSource returns the Kage program computing the next generation.
func TransitionSource() []byte { return transitionSource }

// DisplaySource returns the Kage program copying a generation to the screen.
func DisplaySource() []byte { return displaySource }

// Uniform names shared by the transition program and transitionUniforms.
const (
	UniformBoundary     = "Boundary"
	UniformReviveActive = "ReviveActive"
	UniformRevive       = "Revive"
	UniformReviveRadius = "ReviveRadius"
)

func transitionUniforms(boundary core.Boundary, rv kernel.Revive) map[string]any {
	active := float32(0)
	if rv.Active {
		active = 1
	}
	return map[string]any{
		UniformBoundary:     float32(boundary),
		UniformReviveActive: active,
		UniformRevive:       []float32{float32(rv.At.X), float32(rv.At.Y)},
		UniformReviveRadius: float32(math.Max(rv.Radius, 0)),
	}
}
