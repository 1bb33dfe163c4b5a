// Package seed produces the initial cell frame handed to a device once at
// simulation start.
package seed

import (
	"gpu-life/internal/core"
	"gpu-life/internal/render"
)

// DefaultAliveProbability is the chance a cell starts alive in random mode.
const DefaultAliveProbability = 0.5

// Empty returns an all-dead frame.
func Empty(size core.Size) []byte {
	return render.EncodeCells(make([]uint8, size.Cells()))
}

// Random returns a frame in which every cell is alive with probability p,
// drawn independently of its neighbours.
func Random(size core.Size, p float64, rng *core.RNG) []byte {
	cells := make([]uint8, size.Cells())
	for i := range cells {
		if rng.Chance(p) {
			cells[i] = 1
		}
	}
	return render.EncodeCells(cells)
}

// ForMode dispatches on the configured seed mode.
func ForMode(mode core.SeedMode, size core.Size, p float64, rng *core.RNG) []byte {
	if mode == core.SeedEmpty {
		return Empty(size)
	}
	return Random(size, p, rng)
}
