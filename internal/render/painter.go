//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gpu-life/internal/core"
)

// GridPainter uploads host-side RGBA frames into a single image and draws it.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{size: size, img: ebiten.NewImage(size.W, size.H)}
}

// Blit uploads pix into the painter image and draws it scaled onto dst.
// Frames of the wrong size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != gp.size.Bytes() {
		return
	}
	gp.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() core.Size { return gp.size }

// Dispose frees the underlying image.
func (gp *GridPainter) Dispose() { gp.img.Deallocate() }
