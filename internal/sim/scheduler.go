package sim

import "time"

// FrameFunc is invoked once per display refresh with a monotonically
// increasing timestamp.
type FrameFunc func(t time.Duration)

// Scheduler arms a single callback for the next frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// ManualScheduler holds at most one pending callback until Fire is called.
// The ebiten game loop fires it from Update; tests and headless tools fire
// it directly.
type ManualScheduler struct {
	pending FrameFunc
}

// RequestFrame arms fn, replacing any callback that has not fired yet.
func (s *ManualScheduler) RequestFrame(fn FrameFunc) { s.pending = fn }

// Armed reports whether a callback is waiting.
func (s *ManualScheduler) Armed() bool { return s.pending != nil }

// Fire runs the pending callback with timestamp t. The callback is disarmed
// before it runs so it may re-arm itself. Fire reports whether anything ran.
func (s *ManualScheduler) Fire(t time.Duration) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(t)
	return true
}
