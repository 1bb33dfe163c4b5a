//go:build ebiten

package gpu

import (
	"fmt"

	"gpu-life/internal/core"
	"gpu-life/internal/kernel"

	"github.com/hajimehoshi/ebiten/v2"
)

// Buffer is a grid generation stored in an ebiten image. The same image is
// a render target when it is `next` and a sampler when it is `current`.
type Buffer struct {
	img      *ebiten.Image
	size     core.Size
	boundary core.Boundary
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() core.Size { return b.size }

// Boundary returns the neighbour addressing policy used when sampling b.
func (b *Buffer) Boundary() core.Boundary { return b.boundary }

// Device owns the compiled programs and the visible surface.
type Device struct {
	limits     core.Limits
	transition *ebiten.Shader
	display    *ebiten.Shader
	surface    *ebiten.Image
}

// NewDevice compiles both programs. A compile failure is returned as a
// *core.SetupError and leaves nothing allocated.
func NewDevice() (*Device, error) {
	log := core.Logger()
	transition, err := ebiten.NewShader(transitionSource)
	if err != nil {
		log.Warn("transition program failed to compile", "err", err)
		return nil, &core.SetupError{Stage: "compile transition program", Err: err}
	}
	display, err := ebiten.NewShader(displaySource)
	if err != nil {
		transition.Deallocate()
		log.Warn("display program failed to compile", "err", err)
		return nil, &core.SetupError{Stage: "compile display program", Err: err}
	}
	log.Info("programs compiled")
	return &Device{limits: core.DefaultLimits, transition: transition, display: display}, nil
}

// Allocate creates an image of the given size.
func (d *Device) Allocate(size core.Size, boundary core.Boundary) (core.Buffer, error) {
	if err := d.limits.Check(size); err != nil {
		return nil, err
	}
	return &Buffer{img: ebiten.NewImage(size.W, size.H), size: size, boundary: boundary}, nil
}

// Write uploads a full RGBA frame, row 0 at the top.
func (d *Device) Write(buf core.Buffer, pix []byte) error {
	b := d.buffer(buf)
	if err := core.CheckShape(b.size, pix); err != nil {
		return err
	}
	b.img.WritePixels(pix)
	return nil
}

// Transition renders the generation after src into dst. ebiten refuses to
// draw an image onto itself, and orders this draw before any later draw that
// samples dst.
func (d *Device) Transition(dst, src core.Buffer, rv kernel.Revive) {
	to, from := d.buffer(dst), d.buffer(src)
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = from.img
	op.Uniforms = transitionUniforms(from.boundary, rv)
	op.Blend = ebiten.BlendCopy
	to.img.DrawRectShader(to.size.W, to.size.H, d.transition, op)
}

// Present copies src onto the surface unchanged.
func (d *Device) Present(src core.Buffer) {
	b := d.buffer(src)
	if d.surface == nil || d.surface.Bounds().Dx() != b.size.W || d.surface.Bounds().Dy() != b.size.H {
		if d.surface != nil {
			d.surface.Deallocate()
		}
		d.surface = ebiten.NewImage(b.size.W, b.size.H)
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = b.img
	op.Blend = ebiten.BlendCopy
	d.surface.DrawRectShader(b.size.W, b.size.H, d.display, op)
}

// Release frees the image behind buf.
func (d *Device) Release(buf core.Buffer) {
	d.buffer(buf).img.Deallocate()
}

// Draw scales the last presented generation onto screen.
func (d *Device) Draw(screen *ebiten.Image, scale int) {
	if d.surface == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(d.surface, op)
}

// Close frees the programs and the surface.
func (d *Device) Close() {
	if d.surface != nil {
		d.surface.Deallocate()
		d.surface = nil
	}
	d.transition.Deallocate()
	d.display.Deallocate()
}

func (d *Device) buffer(buf core.Buffer) *Buffer {
	b, ok := buf.(*Buffer)
	if !ok {
		panic(fmt.Sprintf("gpu: buffer %T was not allocated by this device", buf))
	}
	return b
}
