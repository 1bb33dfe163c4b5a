// Package input turns pointer activity into revive coordinates.
package input

import (
	"math"

	"gpu-life/internal/core"
)

// Phase is the state of a pointer gesture.
type Phase uint8

const (
	// Idle means no button or touch is held over the surface.
	Idle Phase = iota
	// Dragging means a gesture is in progress and positions are queued.
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Sink receives the coordinates produced by a gesture.
type Sink interface {
	Push(core.Coord)
	Clear()
}

// Gesture is the Idle -> Dragging -> Idle pointer state machine. Its only
// visible effects are pushes to and clears of its sink.
type Gesture struct {
	sink  Sink
	phase Phase
}

// NewGesture returns an idle gesture feeding sink.
func NewGesture(sink Sink) *Gesture { return &Gesture{sink: sink} }

// Phase returns the current state.
func (g *Gesture) Phase() Phase { return g.phase }

// Press starts a gesture at c. Pressing while already dragging just queues c.
func (g *Gesture) Press(c core.Coord) {
	g.phase = Dragging
	g.sink.Push(c)
}

// Move queues c while a gesture is active.
func (g *Gesture) Move(c core.Coord) {
	if g.phase != Dragging {
		return
	}
	g.sink.Push(c)
}

// Release ends the gesture and discards unconsumed coordinates.
func (g *Gesture) Release() { g.end() }

// Leave ends the gesture because the pointer left the surface.
func (g *Gesture) Leave() { g.end() }

func (g *Gesture) end() {
	if g.phase != Dragging {
		return
	}
	g.phase = Idle
	g.sink.Clear()
}

// MapPoint converts a device-pixel position on a surface drawn at scale into
// grid space. It reports false for points outside the grid.
func MapPoint(px, py float64, scale int, size core.Size) (core.Coord, bool) {
	if scale <= 0 {
		scale = 1
	}
	x := px / float64(scale)
	y := py / float64(scale)
	if x < 0 || y < 0 || x >= float64(size.W) || y >= float64(size.H) || math.IsNaN(x) || math.IsNaN(y) {
		return core.Coord{}, false
	}
	return core.Coord{X: x, Y: y}, true
}
