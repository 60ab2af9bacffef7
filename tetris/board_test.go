package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := newBoard()
	assert.Equal(t, 12, b.Width())
	assert.Equal(t, 22, b.Height())
	assert.True(t, bordersIntact(b))
	assert.True(t, interiorEmpty(b))
	assert.False(t, b.HasPending())

	assert.Panics(t, func() { tetris.NewBoard(2, 10) })
}

func TestBoardSet(t *testing.T) {
	b := newBoard()
	assert.True(t, b.Set(1, 1, 3))
	assert.Equal(t, tetris.Cell(3), b.At(1, 1))

	assert.False(t, b.Set(0, 5, 1), "left wall")
	assert.False(t, b.Set(5, 21, 1), "top wall")
	assert.False(t, b.Set(5, 5, tetris.Wall))
	assert.False(t, b.Set(5, 5, 10))
	assert.Equal(t, tetris.Wall, b.At(-1, 3), "off-grid reads as wall")
	assert.True(t, bordersIntact(b))
}

func TestFits(t *testing.T) {
	cases := []struct {
		name string
		kind tetris.Kind
		x, y int
		fits bool
	}{
		{"spawn", tetris.KindT, 7, 20, true},
		{"into top wall", tetris.KindT, 7, 21, false},
		{"above the grid", tetris.KindT, 7, 22, false},
		{"resting on floor", tetris.KindT, 7, 2, true},
		{"into floor", tetris.KindT, 7, 1, false},
		{"below the grid", tetris.KindT, 7, 0, false},
		{"against right wall", tetris.KindT, 3, 10, true},
		{"into right wall", tetris.KindT, 2, 10, false},
		{"against left wall", tetris.KindT, 10, 10, true},
		{"into left wall", tetris.KindT, 11, 10, false},
		{"past left edge", tetris.KindT, 13, 10, false},
		{"past right edge", tetris.KindT, 0, 10, false},
		{"empty rows may hang off the grid", tetris.KindI, 8, 22, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard()
			assert.Equal(t, tc.fits, b.Fits(tetris.NewPiece(tc.kind, tc.x, tc.y)))
		})
	}

	t.Run("occupied cell", func(t *testing.T) {
		b := newBoard()
		p := tetris.NewPiece(tetris.KindT, 7, 10)
		require.True(t, b.Fits(p))

		b.Set(7, 9, 2)
		assert.False(t, b.Fits(p))

		b.Set(7, 9, tetris.Empty)
		b.Set(7, 10, 2)
		assert.True(t, b.Fits(p), "cells under the empty part of the mask do not matter")
	})

	t.Run("pending rows collide", func(t *testing.T) {
		b := newBoard()
		fillRow(b, 1, 1)
		require.Equal(t, 1, b.CheckLine(1, 1))
		assert.False(t, b.Fits(tetris.NewPiece(tetris.KindT, 7, 2)))
	})
}

func TestAddPiece(t *testing.T) {
	b := newBoard()
	p := tetris.NewPiece(tetris.KindZ, 5, 8)
	b.AddPiece(p)

	for pt := range p.Cells() {
		assert.Equal(t, tetris.KindZ.Color(), b.At(pt.X, pt.Y))
	}
	assert.False(t, b.Fits(p))
}

func TestClearSingleLine(t *testing.T) {
	b := newBoard()
	fillRow(b, 1, 2)
	b.Set(1, 2, 3)
	b.Set(2, 2, 3)
	b.Set(3, 2, 3)
	b.Set(4, 3, 4)
	above := b.Row(2)
	untouched := b.Row(3)

	assert.Equal(t, 1, b.CheckLine(3, 3))
	assert.Equal(t, []int{1}, b.Pending())
	assert.Equal(t, untouched, b.Row(3), "partial rows are not marked")

	assert.Equal(t, 1, b.ClearLines())
	assert.Equal(t, above, b.Row(1))
	assert.Equal(t, untouched, b.Row(2))
	assert.False(t, b.HasPending())

	top := b.Row(b.Height() - 2)
	for x := 1; x < b.Width()-1; x++ {
		assert.Equal(t, tetris.Empty, top[x])
	}
	assert.True(t, bordersIntact(b))
}

func TestClearNonAdjacentLines(t *testing.T) {
	b := newBoard()
	fillRow(b, 1, 1)
	b.Set(1, 2, 2)
	fillRow(b, 3, 1)
	b.Set(2, 4, 3)
	b.Set(3, 5, 4)

	assert.Equal(t, 2, b.CheckLine(5, 5))
	assert.Equal(t, []int{1, 3}, b.Pending())
	assert.Equal(t, 2, b.ClearLines())

	assert.Equal(t, tetris.Cell(2), b.At(1, 1), "row 2 shifts down by one")
	assert.Equal(t, tetris.Cell(3), b.At(2, 2), "row 4 shifts down by two")
	assert.Equal(t, tetris.Cell(4), b.At(3, 3), "row 5 shifts down by two")

	filled := 0
	for pt := range b.Cells() {
		if b.At(pt.X, pt.Y) != tetris.Wall {
			filled++
		}
	}
	assert.Equal(t, 3, filled)
	assert.True(t, bordersIntact(b))
}

func TestClearLinesIdempotent(t *testing.T) {
	b := newBoard()
	b.Set(4, 1, 5)
	before := b.Row(1)

	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, before, b.Row(1))
}

func TestCheckLineDeduplicates(t *testing.T) {
	b := newBoard()
	fillRow(b, 4, 6)
	assert.Equal(t, 1, b.CheckLine(4, 1))
	assert.Equal(t, 1, b.CheckLine(5, 3))
	assert.Equal(t, []int{4}, b.Pending())
}

func TestCheckLineSkipsBorders(t *testing.T) {
	b := newBoard()
	assert.Equal(t, 0, b.CheckLine(b.Height()+2, 6))
	assert.Equal(t, 0, b.CheckLine(1, 4))
	assert.False(t, b.HasPending())
}
