package systems

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies buffered player actions to the session.
type InputSystem struct {
	Session *tetris.Session
	Inputs  *Inputs

	Handled  int
	Rejected int
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for _, in := range s.Inputs.Drain() {
		if s.Session.Handle(in) {
			s.Handled++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem advances the session by one tick.
type GravitySystem struct {
	Session *tetris.Session
}

func (s *GravitySystem) Execute(frame *loop.Frame) {
	s.Session.Tick()
}

// RenderSystem builds the frame's draw requests and hands them to the
// renderer. The request buffer is reused across frames.
type RenderSystem struct {
	Session  *tetris.Session
	Renderer tetris.Renderer

	buf []tetris.DrawRequest
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	s.buf = s.Session.Draw(s.buf[:0])
	s.Renderer.Draw(s.buf)
}

// ResetWatcher calls OnReset whenever the session's board is replaced
// after a failed spawn.
type ResetWatcher struct {
	Session *tetris.Session
	OnReset func(stats tetris.Stats)

	seen int
}

func (s *ResetWatcher) Execute(frame *loop.Frame) {
	stats := s.Session.Stats()
	if stats.Resets == s.seen {
		return
	}
	s.seen = stats.Resets
	if s.OnReset != nil {
		frame.Commands.Defer(func() { s.OnReset(stats) })
	}
}

// Register wires the standard pipeline into scheduler: inputs first, then
// gravity, then rendering when a renderer is given.
func Register(scheduler *loop.Scheduler, session *tetris.Session, inputs *Inputs, renderer tetris.Renderer) {
	scheduler.Register(&InputSystem{Session: session, Inputs: inputs})
	scheduler.Register(&GravitySystem{Session: session})
	if renderer != nil {
		scheduler.Register(&RenderSystem{Session: session, Renderer: renderer})
	}
}
