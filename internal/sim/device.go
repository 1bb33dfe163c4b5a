package sim

import (
	"gpu-life/internal/core"
	"gpu-life/internal/kernel"
)

// Device is the GPU-context collaborator: it owns grid images and runs the
// transition and display passes. Each call is ordered after the previous one.
type Device interface {
	Allocate(size core.Size, boundary core.Boundary) (core.Buffer, error)
	Write(buf core.Buffer, pix []byte) error
	Transition(dst, src core.Buffer, rv kernel.Revive)
	Present(src core.Buffer)
	Release(buf core.Buffer)
}
