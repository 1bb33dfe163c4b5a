// Package cpu runs the transition kernel on the host. It backs the headless
// tools and every engine test.
package cpu

import (
	"gpu-life/internal/core"
	"gpu-life/internal/kernel"
)

// Buffer is a host-resident RGBA frame.
type Buffer struct {
	size     core.Size
	boundary core.Boundary
	pix      []byte
	released bool
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() core.Size { return b.size }

// Boundary returns the neighbour addressing policy used when sampling b.
func (b *Buffer) Boundary() core.Boundary { return b.boundary }

// Pixels exposes the frame for inspection.
func (b *Buffer) Pixels() []byte { return b.pix }

func (b *Buffer) frame() kernel.Frame {
	return kernel.Frame{Pix: b.pix, Size: b.size, Boundary: b.boundary}
}

// Device evaluates transitions with kernel.Step.
type Device struct {
	limits  core.Limits
	surface []byte
	live    int
}

// Option configures a Device.
type Option func(*Device)

// WithLimits overrides the allocation limits.
func WithLimits(l core.Limits) Option {
	return func(d *Device) { d.limits = l }
}

// NewDevice returns a device using core.DefaultLimits unless overridden.
func NewDevice(opts ...Option) *Device {
	d := &Device{limits: core.DefaultLimits}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Allocate creates a zeroed buffer.
func (d *Device) Allocate(size core.Size, boundary core.Boundary) (core.Buffer, error) {
	if err := d.limits.Check(size); err != nil {
		return nil, err
	}
	d.live++
	return &Buffer{size: size, boundary: boundary, pix: make([]byte, size.Bytes())}, nil
}

// Write replaces the full contents of buf.
func (d *Device) Write(buf core.Buffer, pix []byte) error {
	b := d.buffer(buf)
	if err := core.CheckShape(b.size, pix); err != nil {
		return err
	}
	copy(b.pix, pix)
	return nil
}

// Transition writes the generation after src into dst.
func (d *Device) Transition(dst, src core.Buffer, rv kernel.Revive) {
	to, from := d.buffer(dst), d.buffer(src)
	if to == from {
		panic("cpu: transition source and destination are the same buffer")
	}
	kernel.Step(to.pix, from.frame(), rv)
}

// Present copies src to the visible surface.
func (d *Device) Present(src core.Buffer) {
	b := d.buffer(src)
	if len(d.surface) != len(b.pix) {
		d.surface = make([]byte, len(b.pix))
	}
	copy(d.surface, b.pix)
}

// Release frees buf. Releasing twice is a no-op.
func (d *Device) Release(buf core.Buffer) {
	b, ok := buf.(*Buffer)
	if !ok || b.released {
		return
	}
	b.released = true
	b.pix = nil
	d.live--
}

// Surface returns the last presented frame.
func (d *Device) Surface() []byte { return d.surface }

// Live returns the number of allocated, unreleased buffers.
func (d *Device) Live() int { return d.live }

func (d *Device) buffer(buf core.Buffer) *Buffer {
	b, ok := buf.(*Buffer)
	if !ok {
		panic("cpu: buffer was not allocated by this device")
	}
	if b.released {
		panic("cpu: use of released buffer")
	}
	return b
}
