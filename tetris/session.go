package tetris

import (
	"errors"
	"fmt"
)

// Options configures a Session. Tick counts are in scheduler ticks.
type Options struct {
	Width         int
	Height        int
	GravityTicks  int
	ClearDelay    int
	PreviewLength int
}

// DefaultOptions matches the classic 10x20 playfield with a one-second
// gravity step at 16 ms ticks.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		GravityTicks:  60,
		ClearDelay:    20,
		PreviewLength: 6,
	}
}

// Validate checks that the options describe a playable session.
func (o Options) Validate() error {
	var errs []error
	if o.Width < 6 {
		errs = append(errs, fmt.Errorf("width %d is below 6", o.Width))
	}
	if o.Height < 4 {
		errs = append(errs, fmt.Errorf("height %d is below 4", o.Height))
	}
	if o.GravityTicks < 1 {
		errs = append(errs, fmt.Errorf("gravity ticks %d must be positive", o.GravityTicks))
	}
	if o.ClearDelay < 0 {
		errs = append(errs, fmt.Errorf("clear delay %d is negative", o.ClearDelay))
	}
	if o.PreviewLength < 1 {
		errs = append(errs, fmt.Errorf("preview length %d must be positive", o.PreviewLength))
	}
	return errors.Join(errs...)
}

// Stats are running counters for a session.
type Stats struct {
	Ticks        uint64
	Locks        int
	LinesCleared int
	Resets       int
}

// Session drives one game: gravity, player input, spawning and the delayed
// line clear. It is not safe for concurrent use.
type Session struct {
	opts  Options
	src   Source
	board *Board
	piece *Piece
	queue *Queue

	ticks          uint64
	clearAt        uint64
	clearScheduled bool
	stats          Stats
}

// NewSession starts a game on an empty board.
func NewSession(opts Options, src Source) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session options: %w", err)
	}
	if src == nil {
		return nil, errors.New("nil piece source")
	}

	s := &Session{
		opts:  opts,
		src:   src,
		board: NewBoard(opts.Width, opts.Height),
	}
	first := RandomKind(src)
	s.queue = NewQueue(opts.PreviewLength, src)
	s.piece = SpawnPiece(first, s.board)
	return s, nil
}

func (s *Session) Options() Options { return s.opts }
func (s *Session) Board() *Board    { return s.board }
func (s *Session) Piece() *Piece    { return s.piece }
func (s *Session) Queue() *Queue    { return s.queue }
func (s *Session) Ticks() uint64    { return s.ticks }

func (s *Session) Stats() Stats {
	st := s.stats
	st.Ticks = s.ticks
	return st
}

// ClearScheduled reports whether a line clear is waiting and on which tick
// it fires.
func (s *Session) ClearScheduled() (uint64, bool) {
	return s.clearAt, s.clearScheduled
}

// Tick advances the session by one fixed step.
func (s *Session) Tick() {
	s.ticks++

	if s.ticks%uint64(s.opts.GravityTicks) == 0 {
		if s.piece.ForceDown(s.board) {
			s.afterLock()
		}
	}

	if s.clearScheduled && s.ticks >= s.clearAt {
		s.clearScheduled = false
		if s.board.HasPending() {
			s.stats.LinesCleared += s.board.ClearLines()
		}
	}
}

// Handle applies one player action. It reports whether the game state
// changed; rejected moves and rotations are not errors.
func (s *Session) Handle(in Input) bool {
	switch in {
	case MoveLeft:
		return s.piece.Move(1, 0, s.board)
	case MoveRight:
		return s.piece.Move(-1, 0, s.board)
	case RotateCW:
		return s.piece.Rotate(CW, s.board)
	case RotateCCW:
		return s.piece.Rotate(CCW, s.board)
	case SoftDrop:
		if s.piece.ForceDown(s.board) {
			s.afterLock()
		}
		return true
	case HardDrop:
		for !s.piece.ForceDown(s.board) {
		}
		s.afterLock()
		return true
	}
	return false
}

func (s *Session) afterLock() {
	s.stats.Locks++
	s.piece = SpawnPiece(s.queue.Next(), s.board)
	if !s.board.Fits(s.piece) {
		s.board = NewBoard(s.opts.Width, s.opts.Height)
		s.stats.Resets++
	}
	s.clearAt = s.ticks + uint64(s.opts.ClearDelay)
	s.clearScheduled = true
}
