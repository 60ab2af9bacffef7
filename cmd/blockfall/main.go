package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/window"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game. Every ebiten update runs one scheduler tick.
type Game struct {
	scheduler *loop.Scheduler
	session   *tetris.Session
	inputs    *systems.Inputs
	keyboard  *window.Keyboard
	renderer  *window.Renderer

	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend

	polled []tetris.Input
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	if g.overlay != nil && g.overlay.InputCapture() {
		g.keyboard.Release()
	} else {
		g.polled = g.keyboard.Poll(g.polled[:0])
		g.inputs.Push(g.polled...)
	}

	g.scheduler.Once()

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Paint(screen)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.renderer.Size()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece generator seed; 0 picks one at random.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		}
	})

	src, actualSeed := cfg.Rand()
	session, err := tetris.NewSession(cfg.Options(), src)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	log.Printf("Starting blockfall (seed %d, %dx%d, tick %v)", actualSeed, cfg.Game.Width, cfg.Game.Height, cfg.Game.Tick)

	palette := render.DefaultPalette
	renderer := window.NewRenderer(render.NewGrid(session.Board()), cfg.Window.CellSize, palette)
	renderer.Draw(session.Draw(nil))

	inputs := &systems.Inputs{}
	scheduler := loop.NewScheduler(cfg.Game.Tick)
	systems.Register(scheduler, session, inputs, renderer)
	scheduler.Register(&systems.ResetWatcher{
		Session: session,
		OnReset: func(stats tetris.Stats) {
			log.Printf("Board reset after %d locks, %d lines cleared", stats.Locks, stats.LinesCleared)
		},
	})

	game := &Game{
		scheduler: scheduler,
		session:   session,
		inputs:    inputs,
		keyboard:  window.NewKeyboard(),
		renderer:  renderer,
	}

	ebiten.SetTPS(int(time.Second / cfg.Game.Tick))
	if cfg.Debug {
		game.imguiBackend = debugui_ebiten.NewImguiBackend(cfg.Window.Title, 1280, 720)
		game.overlay = debugui.NewOverlay(scheduler, session, actualSeed, palette)
	} else {
		w, h := renderer.Size()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	stats := session.Stats()
	log.Printf("Finished after %d ticks: %d locks, %d lines, %d resets", stats.Ticks, stats.Locks, stats.LinesCleared, stats.Resets)
}
