package tetris

import (
	"fmt"
	"iter"
	"slices"
)

// Cell is a single board or mask value.
type Cell uint8

const (
	Empty Cell = 0
	// Wall marks the border that surrounds the playfield.
	Wall Cell = 8
	// Pending marks a completed row waiting to be compacted.
	Pending Cell = 9
)

const (
	DefaultWidth  = 12
	DefaultHeight = 22
)

// Board is a fixed-size grid with a one-cell wall on every side. Row 0 is
// the bottom wall; x grows toward the player's left.
type Board struct {
	width, height int
	cells         []Cell
	pending       []int
}

// NewBoard returns an empty board of the given outer dimensions.
func NewBoard(width, height int) *Board {
	if width < 3 || height < 3 {
		panic(fmt.Sprintf("board must be at least 3x3, got %dx%d", width, height))
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for x := range width {
		b.cells[x] = Wall
		b.cells[(height-1)*width+x] = Wall
	}
	for y := range height {
		b.cells[y*width] = Wall
		b.cells[y*width+width-1] = Wall
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// In reports whether (x, y) lies on the grid, walls included.
func (b *Board) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Board) interior(x, y int) bool {
	return x > 0 && y > 0 && x < b.width-1 && y < b.height-1
}

// At returns the cell at (x, y). Coordinates off the grid read as Wall.
func (b *Board) At(x, y int) Cell {
	if !b.In(x, y) {
		return Wall
	}
	return b.cells[y*b.width+x]
}

// Set writes an interior cell. Walls and invalid values are rejected.
func (b *Board) Set(x, y int, c Cell) bool {
	if !b.interior(x, y) || c == Wall || c > Pending {
		return false
	}
	b.cells[y*b.width+x] = c
	return true
}

// Row returns a copy of row y, walls included.
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return slices.Clone(b.cells[y*b.width : (y+1)*b.width])
}

// Cells iterates every non-empty cell, walls included, bottom row first.
func (b *Board) Cells() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range b.cells {
			if c == Empty {
				continue
			}
			if !yield(Point{X: i % b.width, Y: i / b.width}, c) {
				return
			}
		}
	}
}

// Fits reports whether every occupied mask cell of p lands on an empty
// cell inside the grid.
func (b *Board) Fits(p *Piece) bool {
	for pt := range p.Cells() {
		if !b.In(pt.X, pt.Y) {
			return false
		}
		if b.cells[pt.Y*b.width+pt.X] != Empty {
			return false
		}
	}
	return true
}

// AddPiece writes p's cells into the board. Callers must have checked Fits.
func (b *Board) AddPiece(p *Piece) {
	for pt, c := range p.Cells() {
		if b.In(pt.X, pt.Y) {
			b.cells[pt.Y*b.width+pt.X] = c
		}
	}
}

// CheckLine scans span rows downward from top and marks every full one as
// pending. It returns the number of rows marked.
func (b *Board) CheckLine(top, span int) int {
	marked := 0
	for y := top; y > top-span; y-- {
		if !b.interior(1, y) || !b.full(y) {
			continue
		}
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := 1; x < b.width-1; x++ {
			row[x] = Pending
		}
		b.markPending(y)
		marked++
	}
	return marked
}

func (b *Board) full(y int) bool {
	for x := 1; x < b.width-1; x++ {
		if b.cells[y*b.width+x] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) markPending(y int) {
	i, found := slices.BinarySearch(b.pending, y)
	if !found {
		b.pending = slices.Insert(b.pending, i, y)
	}
}

// Pending returns the rows waiting to be cleared, lowest first.
func (b *Board) Pending() []int {
	return slices.Clone(b.pending)
}

// HasPending reports whether any row is waiting to be cleared.
func (b *Board) HasPending() bool {
	return len(b.pending) > 0
}

// ClearLines removes every pending row, shifting the rows above it down.
// Rows are removed from the top down so each shift is independent.
func (b *Board) ClearLines() int {
	cleared := len(b.pending)
	top := b.height - 2
	for _, row := range slices.Backward(b.pending) {
		for y := row; y < top; y++ {
			copy(b.cells[y*b.width+1:(y+1)*b.width-1], b.cells[(y+1)*b.width+1:(y+2)*b.width-1])
		}
		clear(b.cells[top*b.width+1 : (top+1)*b.width-1])
	}
	b.pending = b.pending[:0]
	return cleared
}
