package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// botSystem pushes random player actions so the soak run exercises moves,
// rotations and drops as well as gravity.
type botSystem struct {
	inputs *systems.Inputs
	rng    *rand.Rand
	rate   float64
}

func (s *botSystem) Execute(frame *loop.Frame) {
	if s.rng.Float64() < s.rate {
		all := tetris.Inputs()
		s.inputs.Push(all[s.rng.IntN(len(all))])
	}
}

// nullRenderer builds frames without displaying them.
type nullRenderer struct {
	requests int
}

func (r *nullRenderer) Draw(reqs []tetris.DrawRequest) {
	r.requests += len(reqs)
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak run should last.")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks; 0 runs for the full duration.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece generator seed; 0 picks one at random.")
	inputRate := flag.Float64("input-rate", 0.2, "Probability of a random player action on each tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})

	log.Println("Starting blockfall soak run...")

	src, actualSeed := cfg.Rand()
	session, err := tetris.NewSession(cfg.Options(), src)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	inputs := &systems.Inputs{}
	renderer := &nullRenderer{}
	scheduler := loop.NewScheduler(cfg.Game.Tick)
	scheduler.Register(&botSystem{
		inputs: inputs,
		rng:    rand.New(rand.NewPCG(actualSeed, 1)),
		rate:   *inputRate,
	})
	systems.Register(scheduler, session, inputs, renderer)
	scheduler.Register(&systems.ResetWatcher{
		Session: session,
		OnReset: func(stats tetris.Stats) {
			log.Printf("Board reset at tick %d after %d locks", stats.Ticks, stats.Locks)
		},
	})

	report := &Report{
		Duration:       *duration,
		Seed:           actualSeed,
		Config:         cfg,
		InputRate:      *inputRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s (seed %d)...\n", *duration, actualSeed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *maxTicks > 0 && scheduler.Tick() >= *maxTicks {
				break Loop
			}

			updateStart := time.Now()
			scheduler.Once()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Session = session.Stats()
	report.Scheduler = scheduler.GetStats()
	report.DrawRequests = renderer.requests
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
