package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }

// Bytes returns the length of an RGBA frame covering the grid.
func (s Size) Bytes() int { return s.W * s.H * Channels }

// Contains reports whether (x, y) addresses a cell of the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Coord is a grid-space position. Row 0 is the top row everywhere in the
// engine: seeding, sampling, pointer mapping and display.
type Coord struct {
	X float64
	Y float64
}

// Buffer is an opaque device image holding one generation of cell state.
type Buffer interface {
	Size() Size
	Boundary() Boundary
}

// Boundary selects how neighbour lookups behave past the grid edge.
type Boundary uint8

const (
	// BoundaryWrap connects each edge to the opposite one (torus).
	BoundaryWrap Boundary = iota
	// BoundaryClamp repeats the nearest edge cell for out-of-range reads.
	BoundaryClamp
)

func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryClamp:
		return "clamp"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	switch string(text) {
	case "wrap":
		*b = BoundaryWrap
	case "clamp":
		*b = BoundaryClamp
	default:
		return fmt.Errorf("unknown boundary policy %q", text)
	}
	return nil
}

// SeedMode selects the initial contents of the current buffer.
type SeedMode uint8

const (
	// SeedRandom populates each cell independently at random.
	SeedRandom SeedMode = iota
	// SeedEmpty starts with every cell dead.
	SeedEmpty
)

func (m SeedMode) String() string {
	switch m {
	case SeedRandom:
		return "random"
	case SeedEmpty:
		return "empty"
	default:
		return fmt.Sprintf("seed(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SeedMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SeedMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "random":
		*m = SeedRandom
	case "empty":
		*m = SeedEmpty
	default:
		return fmt.Errorf("unknown seed mode %q", text)
	}
	return nil
}
