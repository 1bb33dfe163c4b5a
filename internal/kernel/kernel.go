// Package kernel holds the Life transition as a pure per-cell function. The
// CPU device evaluates it directly; the Kage program in internal/gpu mirrors
// it step for step.
package kernel

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gpu-life/internal/core"
)

// DefaultReviveRadius is the half-width, in cells, of the revive brush.
const DefaultReviveRadius = 5.0

// Rule is the classic B3/S23 survival rule.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Frame is a read-only view of one generation.
type Frame struct {
	Pix      []byte
	Size     core.Size
	Boundary core.Boundary
}

// Alive reports the state of (x, y), resolving out-of-range coordinates
// through the frame's boundary policy.
func (f Frame) Alive(x, y int) bool {
	x, y = f.Boundary.Resolve(x, y, f.Size)
	return f.Pix[f.Size.Index(x, y)*core.Channels+core.StateChannel] == core.Alive
}

// Neighbors counts the live cells in the Moore neighbourhood of (x, y).
func Neighbors(f Frame, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if f.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Revive forces cells near a pointer position alive for one step.
type Revive struct {
	At     core.Coord
	Active bool
	Radius float64
}

// Covers reports whether the brush reaches cell (x, y).
func (r Revive) Covers(x, y int) bool {
	if !r.Active {
		return false
	}
	return math.Abs(float64(x)-r.At.X) < r.Radius && math.Abs(float64(y)-r.At.Y) < r.Radius
}

// Next computes the state of (x, y) in the following generation.
func Next(f Frame, x, y int, rv Revive) bool {
	if rv.Covers(x, y) {
		return true
	}
	return Rule(f.Alive(x, y), Neighbors(f, x, y))
}

// Step writes the next generation of src into dst. Rows are split into bands
// evaluated concurrently; every band reads only src, so the result does not
// depend on scheduling. dst must not share memory with src.
func Step(dst []byte, src Frame, rv Revive) {
	if len(dst) != len(src.Pix) {
		panic("kernel: destination and source frames differ in size")
	}
	if len(dst) > 0 && &dst[0] == &src.Pix[0] {
		panic("kernel: destination aliases source")
	}

	h := src.Size.H
	bands := runtime.GOMAXPROCS(0)
	if bands > h {
		bands = h
	}
	if bands < 1 {
		bands = 1
	}
	rows := (h + bands - 1) / bands

	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += rows {
		y0, y1 := y0, min(y0+rows, h)
		g.Go(func() error {
			stepRows(dst, src, rv, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func stepRows(dst []byte, src Frame, rv Revive, y0, y1 int) {
	w := src.Size.W
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			v := core.Dead
			if Next(src, x, y, rv) {
				v = core.Alive
			}
			base := (y*w + x) * core.Channels
			dst[base+0] = v
			dst[base+1] = v
			dst[base+2] = v
			dst[base+3] = 0xff
		}
	}
}
