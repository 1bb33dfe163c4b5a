// Package sim drives the double-buffered Life simulation: it owns the buffer
// pair, drains the revive queue one entry per step and paces steps against
// frame callbacks.
package sim

import (
	"fmt"
	"strconv"
	"time"

	"gpu-life/internal/core"
	"gpu-life/internal/kernel"
	"gpu-life/internal/revive"
	"gpu-life/internal/seed"
)

// State is the lifecycle phase of a Simulation.
type State uint8

const (
	// Idle means no buffers are allocated.
	Idle State = iota
	// Running means buffers are live and frame callbacks step the grid.
	Running
	// Stopped is terminal; frame callbacks are no longer re-armed.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Stats summarises loop activity since the last start.
type Stats struct {
	Generation uint64
	Throttled  uint64
	Revived    uint64
	Queued     int
}

// Simulation owns both grid buffers, the revive queue and the pacing state.
// It is driven from a single goroutine; only the queue may be touched from
// elsewhere.
type Simulation struct {
	dev      Device
	cfg      Config
	queue    *revive.Queue
	throttle *core.Throttle
	sched    Scheduler
	armed    bool

	// bufs is a two-slot arena; bufs[cur] is read, bufs[1-cur] is written.
	bufs [2]core.Buffer
	cur  int

	state    State
	paused   bool
	stepOnce bool

	generation uint64
	throttled  uint64
	revived    uint64
}

// New returns an idle simulation. A nil queue gets a fresh one.
func New(dev Device, cfg Config, queue *revive.Queue) *Simulation {
	if queue == nil {
		queue = revive.NewQueue()
	}
	return &Simulation{
		dev:      dev,
		cfg:      cfg,
		queue:    queue,
		throttle: core.NewThrottle(cfg.TargetFPS),
	}
}

// Start allocates and seeds the buffer pair and enters Running. On failure
// everything allocated so far is released and the simulation stays Idle.
func (s *Simulation) Start() error {
	switch s.state {
	case Running:
		return nil
	case Stopped:
		return core.ErrStopped
	}

	log := core.Logger()
	if err := s.cfg.Validate(); err != nil {
		log.Warn("invalid configuration", "err", err)
		return &core.SetupError{Stage: "config", Err: err}
	}

	size := s.cfg.Size()
	var bufs [2]core.Buffer
	for i := range bufs {
		b, err := s.dev.Allocate(size, s.cfg.Boundary)
		if err != nil {
			s.release(bufs[:i])
			log.Warn("buffer allocation failed", "size", size, "err", err)
			return &core.SetupError{Stage: "allocate", Err: err}
		}
		bufs[i] = b
	}

	initial := seed.ForMode(s.cfg.Seed, size, s.cfg.AliveProbability, core.NewRNG(s.cfg.RandomSeed))
	if err := s.dev.Write(bufs[0], initial); err != nil {
		s.release(bufs[:])
		return &core.SetupError{Stage: "seed", Err: err}
	}
	if err := s.dev.Write(bufs[1], seed.Empty(size)); err != nil {
		s.release(bufs[:])
		return &core.SetupError{Stage: "seed", Err: err}
	}

	s.bufs = bufs
	s.cur = 0
	s.generation, s.throttled, s.revived = 0, 0, 0
	s.throttle = core.NewThrottle(s.cfg.TargetFPS)
	s.state = Running
	s.request()
	log.Info("simulation started",
		"size", size,
		"seed", s.cfg.Seed,
		"boundary", s.cfg.Boundary,
		"fps", s.cfg.TargetFPS)
	return nil
}

// Arm registers the frame callback with sched. Every callback re-arms itself
// before doing any work while the simulation is Running; a later successful
// Start or Reset arms it again.
func (s *Simulation) Arm(sched Scheduler) {
	s.sched = sched
	s.armed = false
	s.request()
}

func (s *Simulation) request() {
	if s.sched == nil || s.armed {
		return
	}
	s.armed = true
	s.sched.RequestFrame(s.onFrame)
}

func (s *Simulation) onFrame(t time.Duration) {
	s.armed = false
	if s.state != Running {
		return
	}
	s.request()
	s.Tick(t)
}

// Tick runs one frame callback at timestamp t and reports whether the grid
// advanced. Frames arriving within the target interval of the previous step
// do nothing.
func (s *Simulation) Tick(t time.Duration) bool {
	if s.state != Running {
		return false
	}
	if s.paused {
		s.throttle.Rebase(t)
		if !s.stepOnce {
			return false
		}
		s.stepOnce = false
		s.step()
		return true
	}
	if !s.throttle.Due(t) {
		s.throttled++
		return false
	}
	s.step()
	return true
}

func (s *Simulation) step() {
	rv := kernel.Revive{Radius: s.cfg.ReviveRadius}
	if c, ok := s.queue.Pop(); ok {
		rv.At, rv.Active = c, true
		s.revived++
		core.Logger().Debug("revive", "x", c.X, "y", c.Y, "generation", s.generation)
	}

	current, next := s.bufs[s.cur], s.bufs[1-s.cur]
	s.dev.Transition(next, current, rv)
	// The surface shows the generation the transition read from.
	s.dev.Present(current)
	s.cur = 1 - s.cur
	s.generation++
}

// Reset tears down both buffers and starts again with cfg. Pending revive
// coordinates are discarded. Reset is how the grid is resized, cleared or
// re-randomized.
func (s *Simulation) Reset(cfg Config) error {
	if s.state == Stopped {
		return core.ErrStopped
	}
	s.teardown()
	s.queue.Clear()
	s.cfg = cfg
	s.state = Idle
	core.Logger().Info("simulation reset", "size", cfg.Size(), "seed", cfg.Seed)
	return s.Start()
}

// Stop releases both buffers and enters the terminal Stopped state. The
// frame callback is not re-armed afterwards.
func (s *Simulation) Stop() {
	if s.state == Stopped {
		return
	}
	s.teardown()
	s.state = Stopped
	core.Logger().Info("simulation stopped", "generation", s.generation)
}

func (s *Simulation) teardown() {
	if s.state != Running {
		return
	}
	s.release(s.bufs[:])
	s.bufs = [2]core.Buffer{}
}

func (s *Simulation) release(bufs []core.Buffer) {
	for _, b := range bufs {
		if b != nil {
			s.dev.Release(b)
		}
	}
}

// SetPaused suspends or resumes stepping. Frame callbacks keep arriving while
// paused; resuming measures the next interval from the latest callback.
func (s *Simulation) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether stepping is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// StepOnce advances exactly one generation on the next callback while paused.
func (s *Simulation) StepOnce() {
	if s.paused {
		s.stepOnce = true
	}
}

// Current returns the buffer the next step will read. The handle is only
// valid until the next Tick, Reset or Stop.
func (s *Simulation) Current() core.Buffer {
	if s.state != Running {
		return nil
	}
	return s.bufs[s.cur]
}

// Queue returns the revive queue fed by input capture.
func (s *Simulation) Queue() *revive.Queue { return s.queue }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.cfg.Size() }

// State returns the lifecycle phase.
func (s *Simulation) State() State { return s.state }

// Generation returns the number of steps since the last start.
func (s *Simulation) Generation() uint64 { return s.generation }

// Stats returns counters since the last start.
func (s *Simulation) Stats() Stats {
	return Stats{
		Generation: s.generation,
		Throttled:  s.throttled,
		Revived:    s.revived,
		Queued:     s.queue.Len(),
	}
}

// Parameters describes the running simulation for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	st := s.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeEnum, Value: s.Size().String()},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeEnum, Value: s.cfg.Boundary.String()},
				{Key: "seed_mode", Label: "Seed", Type: core.ParamTypeEnum, Value: s.cfg.Seed.String()},
				{Key: "radius", Label: "Brush", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.ReviveRadius, 'g', -1, 64)},
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeEnum, Value: s.state.String()},
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(st.Generation, 10)},
				{Key: "fps", Label: "Target FPS", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.TargetFPS, 'g', -1, 64)},
				{Key: "queued", Label: "Queued", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Queued)},
			},
		},
	}}
}
