// Command life-sweep runs the simulation headless on the CPU device across a
// grid of seeds and boundary policies and reports how each population ends.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"gpu-life/internal/app"
	"gpu-life/internal/core"
	"gpu-life/internal/cpu"
	"gpu-life/internal/render"
	"gpu-life/internal/sim"
)

type scenario struct {
	boundary core.Boundary
	seed     int64
}

type result struct {
	scenario
	generation uint64
	initial    int
	final      int
	peak       int
	revived    uint64
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios evaluated in parallel")
	seeds := flag.Int("seeds", 8, "random seeds per boundary policy")
	stroke := flag.Int("stroke", 0, "revive coordinates queued along the diagonal before running")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")

	cfg := app.NewConfig()
	flag.IntVar(&cfg.Sim.Width, "w", 128, "grid width in cells")
	flag.IntVar(&cfg.Sim.Height, "h", 128, "grid height in cells")
	flag.Float64Var(&cfg.Sim.AliveProbability, "p", cfg.Sim.AliveProbability, "probability a cell starts alive")
	flag.Parse()

	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatal(err)
	}
	core.SetLogger(app.NewLogger(cfg.LogLevel))

	var scenarios []scenario
	for _, b := range []core.Boundary{core.BoundaryWrap, core.BoundaryClamp} {
		for s := 0; s < *seeds; s++ {
			scenarios = append(scenarios, scenario{boundary: b, seed: int64(s + 1)})
		}
	}

	fmt.Printf("Sweeping %d scenarios on %v (%d workers, %d steps)\n", len(scenarios), cfg.Sim.Size(), *workers, *steps)
	start := time.Now()

	results := make([]result, len(scenarios))
	var g errgroup.Group
	g.SetLimit(max(*workers, 1))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := run(cfg.Sim, sc, *steps, *stroke)
			if err != nil {
				return fmt.Errorf("%v seed %d: %w", sc.boundary, sc.seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].final > results[j].final })
	for _, r := range results {
		fmt.Printf("%-5v seed=%-3d gen=%d initial=%d final=%d peak=%d revived=%d\n",
			r.boundary, r.seed, r.generation, r.initial, r.final, r.peak, r.revived)
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}

// run drives one simulation through steps due frames. Timestamps advance by
// two intervals per frame so every callback steps.
func run(base sim.Config, sc scenario, steps, stroke int) (result, error) {
	cfg := base
	cfg.Seed = core.SeedRandom
	cfg.Boundary = sc.boundary
	cfg.RandomSeed = sc.seed

	s := sim.New(cpu.NewDevice(), cfg, nil)
	if err := s.Start(); err != nil {
		return result{}, err
	}
	defer s.Stop()

	size := s.Size()
	for i := 0; i < stroke; i++ {
		t := float64(i) / float64(max(stroke, 1))
		s.Queue().Push(core.Coord{X: t * float64(size.W), Y: t * float64(size.H)})
	}

	res := result{scenario: sc, initial: population(s)}
	res.peak = res.initial

	var sched sim.ManualScheduler
	s.Arm(&sched)
	frame := 2 * core.NewThrottle(cfg.TargetFPS).Interval()
	for i := 1; i <= steps; i++ {
		sched.Fire(time.Duration(i) * frame)
		res.peak = max(res.peak, population(s))
	}

	st := s.Stats()
	res.generation = st.Generation
	res.revived = st.Revived
	res.final = population(s)
	return res, nil
}

func population(s *sim.Simulation) int {
	return render.Population(s.Current().(*cpu.Buffer).Pixels())
}
