package core

import "time"

// Throttle paces simulation steps against frame callback timestamps so the
// step rate is independent of the display refresh rate.
type Throttle struct {
	interval time.Duration
	last     time.Duration
}

// NewThrottle constructs a Throttle targeting the given frames per second.
func NewThrottle(fps float64) *Throttle {
	t := &Throttle{}
	t.SetFPS(fps)
	return t
}

// SetFPS changes the target rate. Non-positive values fall back to 60.
func (t *Throttle) SetFPS(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	t.interval = time.Duration(float64(time.Second) / fps)
	if t.interval <= 0 {
		t.interval = 1
	}
}

// Interval returns the minimum spacing between two steps.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Last returns the timestamp the next delta is measured from.
func (t *Throttle) Last() time.Duration { return t.last }

// Due reports whether a step should run for the callback at now. When it
// does, the reference point only advances by whole intervals so leftover
// time carries into the next frame instead of accumulating drift.
func (t *Throttle) Due(now time.Duration) bool {
	delta := now - t.last
	if delta <= t.interval {
		return false
	}
	t.last = now - delta%t.interval
	return true
}

// Rebase restarts delta measurement at now.
func (t *Throttle) Rebase(now time.Duration) { t.last = now }
