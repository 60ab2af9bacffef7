package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/term"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece generator seed; 0 picks one at random.")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them.")
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

	// The terminal belongs to tcell once the screen is up.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	src, actualSeed := cfg.Rand()
	session, err := tetris.NewSession(cfg.Options(), src)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if *logPath == "" {
		log.SetOutput(io.Discard)
	}
	log.Printf("Starting blockfall (seed %d, %dx%d, tick %v)", actualSeed, cfg.Game.Width, cfg.Game.Height, cfg.Game.Tick)

	renderer := term.NewRenderer(screen, render.NewGrid(session.Board()), render.DefaultPalette)
	inputs := &systems.Inputs{}
	scheduler := loop.NewScheduler(cfg.Game.Tick)
	scheduler.Register(&systems.InputSystem{Session: session, Inputs: inputs})
	scheduler.Register(&systems.GravitySystem{Session: session})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		stats := session.Stats()
		renderer.SetStatus(fmt.Sprintf("lines %d  locks %d  resets %d  seed %d  (q to quit)",
			stats.LinesCleared, stats.Locks, stats.Resets, actualSeed))
	}))
	scheduler.Register(&systems.RenderSystem{Session: session, Renderer: renderer})
	scheduler.Register(&systems.ResetWatcher{
		Session: session,
		OnReset: func(stats tetris.Stats) {
			log.Printf("Board reset after %d locks, %d lines cleared", stats.Locks, stats.LinesCleared)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run(ctx, screen, scheduler, inputs)

	stats := session.Stats()
	log.Printf("Finished after %d ticks: %d locks, %d lines, %d resets", stats.Ticks, stats.Locks, stats.LinesCleared, stats.Resets)
}

// run owns the session: tcell events arrive over a channel from the
// polling goroutine and are applied on the next tick.
func run(ctx context.Context, screen tcell.Screen, scheduler *loop.Scheduler, inputs *systems.Inputs) {
	ticker := time.NewTicker(scheduler.Step())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return
				}
				if in, ok := term.KeyInput(ev); ok {
					inputs.Push(in)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			scheduler.Advance(now.Sub(lastTime))
			lastTime = now
		}
	}
}
