package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateMaskTransform(t *testing.T) {
	b := newBoard()
	p := tetris.NewPiece(tetris.KindT, 7, 10)

	require.True(t, p.Rotate(tetris.CW, b))
	assert.Equal(t, tetris.RotationRight, p.Rotation())
	assert.Equal(t, []tetris.Cell{
		0, 6, 0,
		0, 6, 6,
		0, 6, 0,
	}, p.Mask())

	require.True(t, p.Rotate(tetris.CW, b))
	assert.Equal(t, []tetris.Cell{
		0, 0, 0,
		6, 6, 6,
		0, 6, 0,
	}, p.Mask())

	require.True(t, p.Rotate(tetris.CW, b))
	assert.Equal(t, []tetris.Cell{
		0, 6, 0,
		6, 6, 0,
		0, 6, 0,
	}, p.Mask())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, dir := range []tetris.Direction{tetris.CW, tetris.CCW} {
		for k := range tetris.Kind(tetris.NumKinds) {
			t.Run(fmt.Sprintf("%s/%d", k, dir), func(t *testing.T) {
				b := newBoard()
				p := tetris.NewPiece(k, 8, 12)
				mask := p.Mask()

				for range 4 {
					require.True(t, p.Rotate(dir, b))
				}

				assert.Equal(t, mask, p.Mask())
				assert.Equal(t, tetris.RotationSpawn, p.Rotation())
				assert.Equal(t, 8, p.X)
				assert.Equal(t, 12, p.Y)
			})
		}
	}
}

func TestRotateWallKick(t *testing.T) {
	b := newBoard()
	p := tetris.NewPiece(tetris.KindT, 7, 10)
	require.True(t, p.Rotate(tetris.CW, b))

	for p.Move(1, 0, b) {
	}
	require.Equal(t, 11, p.X, "vertical T hugs the wall")

	require.True(t, p.Rotate(tetris.CCW, b))
	assert.Equal(t, tetris.RotationSpawn, p.Rotation())
	assert.Equal(t, 10, p.X, "second kick test moves the piece off the wall")
	assert.Equal(t, 10, p.Y)
}

func TestRotateIsDeterministic(t *testing.T) {
	run := func() (int, int, tetris.Rotation) {
		b := newBoard()
		fillRow(b, 1, 1)
		fillRow(b, 2, 1)
		b.Set(5, 3, 2)
		p := tetris.NewPiece(tetris.KindJ, 3, 4)
		p.Rotate(tetris.CW, b)
		return p.X, p.Y, p.Rotation()
	}

	x, y, r := run()
	for range 10 {
		x2, y2, r2 := run()
		assert.Equal(t, x, x2)
		assert.Equal(t, y, y2)
		assert.Equal(t, r, r2)
	}
}

func TestRotateRejectedLeavesPiece(t *testing.T) {
	b := newBoard()
	p := tetris.NewPiece(tetris.KindT, 7, 10)
	own := cellSet(p)
	for y := 1; y < b.Height()-1; y++ {
		for x := 1; x < b.Width()-1; x++ {
			if !own[tetris.Point{X: x, Y: y}] {
				b.Set(x, y, 1)
			}
		}
	}
	mask := p.Mask()

	assert.False(t, p.Rotate(tetris.CW, b))
	assert.False(t, p.Rotate(tetris.CCW, b))
	assert.Equal(t, mask, p.Mask())
	assert.Equal(t, tetris.RotationSpawn, p.Rotation())
	assert.Equal(t, 7, p.X)
	assert.Equal(t, 10, p.Y)
}

func TestMove(t *testing.T) {
	b := newBoard()
	p := tetris.NewPiece(tetris.KindT, 7, 10)

	assert.True(t, p.Move(1, 0, b))
	assert.Equal(t, 8, p.X)

	b.Set(4, 9, 3)
	assert.True(t, p.Move(-1, 0, b))
	assert.False(t, p.Move(-1, 0, b), "blocked by the cell at x=4")
	assert.Equal(t, 7, p.X)
	assert.Equal(t, 10, p.Y)
}

func TestForceDown(t *testing.T) {
	t.Run("falls with space below", func(t *testing.T) {
		b := newBoard()
		p := tetris.SpawnPiece(tetris.KindT, b)
		assert.False(t, p.ForceDown(b))
		assert.Equal(t, 19, p.Y)
		assert.True(t, interiorEmpty(b))
	})

	t.Run("locks above a collision", func(t *testing.T) {
		b := newBoard()
		p := tetris.NewPiece(tetris.KindT, 7, 2)
		assert.True(t, p.ForceDown(b))
		assert.Equal(t, 2, p.Y)

		assert.Equal(t, tetris.Cell(6), b.At(6, 2))
		assert.Equal(t, tetris.Cell(6), b.At(7, 1))
		assert.Equal(t, tetris.Cell(6), b.At(6, 1))
		assert.Equal(t, tetris.Cell(6), b.At(5, 1))
		assert.Equal(t, tetris.Empty, b.At(8, 1))
		assert.False(t, b.HasPending())
	})

	t.Run("lock marks completed rows", func(t *testing.T) {
		b := newBoard()
		for x := 1; x < b.Width()-1; x++ {
			if x < 4 || x > 7 {
				b.Set(x, 1, 2)
			}
		}
		p := tetris.SpawnPiece(tetris.KindI, b)
		for !p.ForceDown(b) {
		}
		assert.Equal(t, []int{1}, b.Pending())
		for x := 1; x < b.Width()-1; x++ {
			assert.Equal(t, tetris.Pending, b.At(x, 1))
		}
	})
}

func TestGhost(t *testing.T) {
	b := newBoard()
	p := tetris.SpawnPiece(tetris.KindT, b)

	x, y := p.Ghost(b)
	assert.Equal(t, 7, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, 20, p.Y, "probing must not move the piece")

	fillRow(b, 1, 1)
	fillRow(b, 2, 1)
	require.True(t, p.Rotate(tetris.CW, b))
	px, py, rot := p.X, p.Y, p.Rotation()

	x, y = p.Ghost(b)
	assert.Equal(t, px, x)
	assert.Equal(t, 5, y)
	assert.Equal(t, px, p.X)
	assert.Equal(t, py, p.Y)
	assert.Equal(t, rot, p.Rotation())
}
