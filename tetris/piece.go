package tetris

import (
	"iter"
	"slices"
)

// Rotation is one of the four discrete orientations of a piece.
type Rotation uint8

const (
	RotationSpawn Rotation = iota
	RotationRight
	RotationFlip
	RotationLeft
)

// Direction is a quarter turn: CW or CCW.
type Direction int8

const (
	CW  Direction = 1
	CCW Direction = -1
)

// Turn returns the state reached by rotating once in dir.
func (r Rotation) Turn(dir Direction) Rotation {
	return Rotation((int(r) + int(dir) + 4) % 4)
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// Piece is the active tetromino. Mask cell (mx, my) covers board cell
// (X-mx, Y-my).
type Piece struct {
	X, Y int

	kind     Kind
	rotation Rotation
	side     int
	base     []Cell
	mask     []Cell
	kicks    KickTable
}

// NewPiece creates a piece of kind k in spawn orientation anchored at (x, y).
func NewPiece(k Kind, x, y int) *Piece {
	t := Lookup(k)
	return &Piece{
		X:     x,
		Y:     y,
		kind:  t.Kind,
		side:  t.Side,
		base:  t.Shape,
		mask:  slices.Clone(t.Shape),
		kicks: t.Kicks,
	}
}

// SpawnPiece creates a piece of kind k at its spawn point on b.
func SpawnPiece(k Kind, b *Board) *Piece {
	x, y := SpawnPoint(k, b.Width(), b.Height())
	return NewPiece(k, x, y)
}

func (p *Piece) Kind() Kind         { return p.kind }
func (p *Piece) Rotation() Rotation { return p.rotation }
func (p *Piece) Side() int          { return p.side }

// At returns the mask cell at (mx, my), or Empty outside the mask.
func (p *Piece) At(mx, my int) Cell {
	if mx < 0 || my < 0 || mx >= p.side || my >= p.side {
		return Empty
	}
	return p.mask[my*p.side+mx]
}

// Mask returns a copy of the rotated mask, row-major.
func (p *Piece) Mask() []Cell {
	return slices.Clone(p.mask)
}

// Cells iterates the board coordinates covered by the piece.
func (p *Piece) Cells() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range p.mask {
			if c == Empty {
				continue
			}
			pt := Point{X: p.X - i%p.side, Y: p.Y - i/p.side}
			if !yield(pt, c) {
				return
			}
		}
	}
}

// rotateMask derives the mask for state r directly from the base shape.
func rotateMask(base []Cell, side int, r Rotation) []Cell {
	r90 := (side - 1) * side
	r180 := side*side - 1
	r270 := side - 1

	out := make([]Cell, len(base))
	for i := range out {
		ix := i % side
		iy := i / side
		switch r {
		case RotationSpawn:
			out[i] = base[iy*side+ix]
		case RotationRight:
			out[i] = base[r90+iy-ix*side]
		case RotationFlip:
			out[i] = base[r180-iy*side-ix]
		case RotationLeft:
			out[i] = base[r270-iy+ix*side]
		}
	}
	return out
}

// Rotate turns the piece a quarter in dir, trying each wall-kick candidate
// in order. The piece is left untouched when no candidate fits.
func (p *Piece) Rotate(dir Direction, b *Board) bool {
	target := p.rotation.Turn(dir)

	candidate := *p
	candidate.rotation = target
	candidate.mask = rotateMask(p.base, p.side, target)

	for test := range p.kicks.Tests() {
		kick := p.kicks.Candidate(p.rotation, target, test)
		candidate.X = p.X + kick.X
		candidate.Y = p.Y + kick.Y
		if b.Fits(&candidate) {
			*p = candidate
			return true
		}
	}
	return false
}

// Move translates the piece by (dx, dy) if the destination fits.
// Positive dx moves toward the player's left.
func (p *Piece) Move(dx, dy int, b *Board) bool {
	candidate := *p
	candidate.X += dx
	candidate.Y += dy
	if !b.Fits(&candidate) {
		return false
	}
	p.X, p.Y = candidate.X, candidate.Y
	return true
}

// ForceDown applies one gravity step. When the piece cannot fall it is
// merged into b, completed lines are marked, and ForceDown returns true.
func (p *Piece) ForceDown(b *Board) bool {
	if p.Move(0, -1, b) {
		return false
	}
	b.AddPiece(p)
	b.CheckLine(p.Y, p.side)
	return true
}

// Ghost returns the lowest anchor the piece could drop to.
func (p *Piece) Ghost(b *Board) (x, y int) {
	probe := *p
	for {
		probe.Y--
		if !b.Fits(&probe) {
			return p.X, probe.Y + 1
		}
	}
}
