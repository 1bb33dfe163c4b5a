//go:build ebiten

package app

import (
	"time"

	"gpu-life/internal/core"
	"gpu-life/internal/input"
	"gpu-life/internal/sim"
	"gpu-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a running simulation to the ebiten.Game interface. Update acts
// as the display-synchronised frame scheduler and the pointer poller.
type Game struct {
	sim     *sim.Simulation
	dev     Display
	sched   *sim.ManualScheduler
	gesture *input.Gesture
	hud     *ui.HUD

	scale int
	start time.Time

	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
}

// New constructs a Game for a started simulation and arms its frame callback.
func New(s *sim.Simulation, dev Display, scale int, showHUD bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:     s,
		dev:     dev,
		sched:   &sim.ManualScheduler{},
		gesture: input.NewGesture(s.Queue()),
		hud:     ui.NewHUD(s, showHUD),
		scale:   scale,
		start:   time.Now(),
	}
	s.Arm(g.sched)
	return g
}

// Update handles per-frame input and fires the simulation's frame callback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.Stop()
		g.dev.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetPaused(!g.sim.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if err := g.handleResets(); err != nil {
		return err
	}

	g.pollPointer()
	g.sched.Fire(time.Since(g.start))
	g.hud.Update()
	return nil
}

func (g *Game) handleResets() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.reset(func(c *sim.Config) {
			c.Seed = core.SeedRandom
			c.RandomSeed = time.Now().UnixNano()
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return g.reset(func(c *sim.Config) { c.Seed = core.SeedEmpty })
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		return g.reset(func(c *sim.Config) { c.Width, c.Height = c.Width*2, c.Height*2 })
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		return g.reset(func(c *sim.Config) { c.Width, c.Height = max(c.Width/2, 1), max(c.Height/2, 1) })
	}
	return nil
}

// reset restarts the simulation with a modified configuration, falling back
// to the previous one when the new grid cannot be set up.
func (g *Game) reset(mutate func(*sim.Config)) error {
	prev := g.sim.Config()
	cfg := prev
	mutate(&cfg)
	g.gesture.Release()
	if err := g.sim.Reset(cfg); err != nil {
		core.Logger().Warn("reset rejected, restoring previous grid", "size", cfg.Size(), "err", err)
		if err := g.sim.Reset(prev); err != nil {
			return err
		}
		cfg = prev
	}
	ebiten.SetWindowSize(cfg.Width*g.scale, cfg.Height*g.scale)
	return nil
}

func (g *Game) pollPointer() {
	size := g.sim.Size()
	if g.pollTouch(size) {
		return
	}
	x, y := ebiten.CursorPosition()
	c, inside := input.MapPoint(float64(x), float64(y), g.scale, size)
	switch {
	case !inside:
		g.gesture.Leave()
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.gesture.Release()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.gesture.Press(c)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.gesture.Move(c)
	}
}

// pollTouch follows the first touch that lands on the surface. It reports
// whether touch input was handled this frame.
func (g *Game) pollTouch(size core.Size) bool {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.gesture.Release()
			return true
		}
		x, y := ebiten.TouchPosition(g.touchID)
		c, inside := input.MapPoint(float64(x), float64(y), g.scale, size)
		if !inside {
			g.touching = false
			g.gesture.Leave()
			return true
		}
		g.gesture.Move(c)
		return true
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if c, inside := input.MapPoint(float64(x), float64(y), g.scale, size); inside {
			g.touchID, g.touching = id, true
			g.gesture.Press(c)
			return true
		}
	}
	return false
}

// Draw renders the last presented generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.dev.Draw(screen, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
