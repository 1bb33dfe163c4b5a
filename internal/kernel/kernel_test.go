package kernel

import (
	"slices"
	"testing"

	"gpu-life/internal/core"
	"gpu-life/internal/render"
)

func frameOf(size core.Size, b core.Boundary, alive ...[2]int) Frame {
	pix := render.EncodeCells(make([]uint8, size.Cells()))
	for _, c := range alive {
		render.SetCell(pix, size, c[0], c[1], true)
	}
	return Frame{Pix: pix, Size: size, Boundary: b}
}

// referenceNext spells the rule out per neighbour count.
func referenceNext(alive bool, count int) bool {
	switch count {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}

func TestRuleExhaustiveNeighborhoods(t *testing.T) {
	size := core.Size{W: 5, H: 5}
	for mask := 0; mask < 1<<9; mask++ {
		var cells [][2]int
		count := 0
		for bit := 0; bit < 9; bit++ {
			if mask&(1<<bit) == 0 {
				continue
			}
			cells = append(cells, [2]int{1 + bit%3, 1 + bit/3})
			if bit != 4 {
				count++
			}
		}
		centerAlive := mask&(1<<4) != 0
		for _, b := range []core.Boundary{core.BoundaryWrap, core.BoundaryClamp} {
			f := frameOf(size, b, cells...)
			if got := Neighbors(f, 2, 2); got != count {
				t.Fatalf("mask %09b: Neighbors = %d, want %d", mask, got, count)
			}
			want := referenceNext(centerAlive, count)
			if got := Next(f, 2, 2, Revive{}); got != want {
				t.Fatalf("mask %09b (%v): Next = %v, want %v", mask, b, got, want)
			}
		}
	}
}

func TestSingleCellDies(t *testing.T) {
	size := core.Size{W: 6, H: 6}
	src := frameOf(size, core.BoundaryWrap, [2]int{2, 2})
	dst := make([]byte, size.Bytes())
	Step(dst, src, Revive{})
	if n := render.Population(dst); n != 0 {
		t.Fatalf("population after step = %d, want 0", n)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	size := core.Size{W: 5, H: 5}
	src := frameOf(size, core.BoundaryWrap, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	dst := make([]byte, size.Bytes())
	Step(dst, src, Revive{})

	want := frameOf(size, core.BoundaryWrap, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if !slices.Equal(dst, want.Pix) {
		t.Fatalf("after one step got %v, want %v", render.DecodeCells(dst), render.DecodeCells(want.Pix))
	}

	back := make([]byte, size.Bytes())
	Step(back, Frame{Pix: dst, Size: size, Boundary: core.BoundaryWrap}, Revive{})
	if !slices.Equal(back, src.Pix) {
		t.Fatalf("after two steps got %v, want %v", render.DecodeCells(back), render.DecodeCells(src.Pix))
	}
}

func TestDiagonalWrap(t *testing.T) {
	size := core.Size{W: 8, H: 8}
	f := frameOf(size, core.BoundaryWrap, [2]int{0, 0}, [2]int{7, 7})
	if got := Neighbors(f, 0, 0); got != 1 {
		t.Fatalf("Neighbors(0,0) = %d, want 1", got)
	}
	if got := Neighbors(f, 7, 7); got != 1 {
		t.Fatalf("Neighbors(7,7) = %d, want 1", got)
	}

	clamped := frameOf(size, core.BoundaryClamp, [2]int{0, 0}, [2]int{7, 7})
	if got := Neighbors(clamped, 7, 7); got != 3 {
		// (8,7), (7,8) and (8,8) all clamp back onto (7,7) itself.
		t.Fatalf("clamped Neighbors(7,7) = %d, want 3", got)
	}
	if got := Neighbors(clamped, 0, 0); got != 3 {
		t.Fatalf("clamped Neighbors(0,0) = %d, want 3", got)
	}
}

func TestReviveFootprint(t *testing.T) {
	size := core.Size{W: 32, H: 32}
	src := frameOf(size, core.BoundaryWrap)
	dst := make([]byte, size.Bytes())
	rv := Revive{At: core.Coord{X: 16, Y: 10}, Active: true, Radius: DefaultReviveRadius}
	Step(dst, src, rv)

	cells := render.DecodeCells(dst)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			inside := abs(x-16) < 5 && abs(y-10) < 5
			alive := cells[size.Index(x, y)] == 1
			if alive != inside {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, alive, inside)
			}
		}
	}
	if n := render.Population(dst); n != 9*9 {
		t.Fatalf("footprint population = %d, want 81", n)
	}
}

func TestReviveOverridesRule(t *testing.T) {
	size := core.Size{W: 8, H: 8}
	// A fully alive grid dies everywhere from overcrowding except under the brush.
	cells := make([]uint8, size.Cells())
	for i := range cells {
		cells[i] = 1
	}
	src := Frame{Pix: render.EncodeCells(cells), Size: size, Boundary: core.BoundaryWrap}
	dst := make([]byte, size.Bytes())
	Step(dst, src, Revive{At: core.Coord{X: 0, Y: 0}, Active: true, Radius: 1})
	got := render.DecodeCells(dst)
	for i, c := range got {
		want := uint8(0)
		if i == 0 {
			want = 1
		}
		if c != want {
			t.Fatalf("cell %d = %d, want %d", i, c, want)
		}
	}
}

func TestInactiveReviveCoversNothing(t *testing.T) {
	rv := Revive{At: core.Coord{X: 3, Y: 3}, Radius: 5}
	if rv.Covers(3, 3) {
		t.Fatal("inactive revive must not cover any cell")
	}
}

func TestStepMatchesSerialEvaluation(t *testing.T) {
	size := core.Size{W: 37, H: 23}
	cells := make([]uint8, size.Cells())
	rng := core.NewRNG(3)
	for i := range cells {
		if rng.Bool() {
			cells[i] = 1
		}
	}
	src := Frame{Pix: render.EncodeCells(cells), Size: size, Boundary: core.BoundaryClamp}
	dst := make([]byte, size.Bytes())
	rv := Revive{At: core.Coord{X: 30.5, Y: 2.25}, Active: true, Radius: 2}
	Step(dst, src, rv)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			want := Next(src, x, y, rv)
			got := dst[size.Index(x, y)*core.Channels] == core.Alive
			if got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestStepRejectsAliasing(t *testing.T) {
	size := core.Size{W: 4, H: 4}
	src := frameOf(size, core.BoundaryWrap)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when destination aliases source")
		}
	}()
	Step(src.Pix, src, Revive{})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
