package tetris_test

import "github.com/plus3/blockfall/tetris"

// script replays a fixed sequence of draws, wrapping around at the end.
type script struct {
	values []int
	next   int
}

func newScript(values ...int) *script {
	return &script{values: values}
}

func (s *script) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newBoard() *tetris.Board {
	return tetris.NewBoard(tetris.DefaultWidth, tetris.DefaultHeight)
}

// fillRow sets every interior cell of row y to c.
func fillRow(b *tetris.Board, y int, c tetris.Cell) {
	for x := 1; x < b.Width()-1; x++ {
		b.Set(x, y, c)
	}
}

func interiorEmpty(b *tetris.Board) bool {
	for y := 1; y < b.Height()-1; y++ {
		for x := 1; x < b.Width()-1; x++ {
			if b.At(x, y) != tetris.Empty {
				return false
			}
		}
	}
	return true
}

func bordersIntact(b *tetris.Board) bool {
	for x := range b.Width() {
		if b.At(x, 0) != tetris.Wall || b.At(x, b.Height()-1) != tetris.Wall {
			return false
		}
	}
	for y := range b.Height() {
		if b.At(0, y) != tetris.Wall || b.At(b.Width()-1, y) != tetris.Wall {
			return false
		}
	}
	return true
}

func cellSet(p *tetris.Piece) map[tetris.Point]bool {
	set := make(map[tetris.Point]bool)
	for pt := range p.Cells() {
		set[pt] = true
	}
	return set
}
