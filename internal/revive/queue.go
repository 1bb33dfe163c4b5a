// Package revive buffers pointer positions between input capture and the
// simulation loop.
package revive

import (
	"sync"

	"gpu-life/internal/core"
)

// Queue is an unbounded FIFO of grid coordinates. Input capture pushes and
// clears it, the simulation loop pops one entry per step. All methods are
// safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []core.Coord
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends c.
func (q *Queue) Push(c core.Coord) {
	q.mu.Lock()
	q.items = append(q.items, c)
	q.mu.Unlock()
}

// Pop removes and returns the oldest coordinate.
func (q *Queue) Pop() (core.Coord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head >= len(q.items) {
		return core.Coord{}, false
	}
	c := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return c, true
}

// Clear drops every pending coordinate.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.items = q.items[:0]
	q.head = 0
	q.mu.Unlock()
}

// Len returns the number of pending coordinates.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
