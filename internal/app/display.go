//go:build ebiten

package app

import (
	"fmt"

	"gpu-life/internal/core"
	"gpu-life/internal/cpu"
	"gpu-life/internal/gpu"
	"gpu-life/internal/render"
	"gpu-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display is a simulation device that can also put its surface on screen.
type Display interface {
	sim.Device
	Draw(screen *ebiten.Image, scale int)
	Close()
}

// NewDisplay returns the device named by kind: "gpu" runs the Kage programs,
// "cpu" runs the host kernel and uploads each presented frame.
func NewDisplay(kind string) (Display, error) {
	switch kind {
	case DeviceGPU:
		dev, err := gpu.NewDevice()
		if err != nil {
			return nil, err
		}
		return dev, nil
	case DeviceCPU:
		return &cpuDisplay{Device: cpu.NewDevice()}, nil
	default:
		return nil, &core.SetupError{Stage: "device", Err: fmt.Errorf("unknown device %q", kind)}
	}
}

type cpuDisplay struct {
	*cpu.Device
	painter *render.GridPainter
}

func (d *cpuDisplay) Present(src core.Buffer) {
	d.Device.Present(src)
	if d.painter == nil || d.painter.Size() != src.Size() {
		if d.painter != nil {
			d.painter.Dispose()
		}
		d.painter = render.NewGridPainter(src.Size())
	}
}

func (d *cpuDisplay) Draw(screen *ebiten.Image, scale int) {
	if d.painter == nil {
		return
	}
	d.painter.Blit(screen, d.Surface(), max(scale, 1))
}

func (d *cpuDisplay) Close() {
	if d.painter != nil {
		d.painter.Dispose()
		d.painter = nil
	}
}
