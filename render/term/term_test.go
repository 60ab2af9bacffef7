package term_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/term"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeros struct{}

func (zeros) IntN(int) int { return 0 }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)
	return screen
}

func TestRendererDraw(t *testing.T) {
	screen := newScreen(t)
	session, err := tetris.NewSession(tetris.DefaultOptions(), zeros{})
	require.NoError(t, err)

	r := term.NewRenderer(screen, render.NewGrid(session.Board()), render.DefaultPalette)
	r.SetStatus("lines 0")
	r.Draw(session.Draw(nil))

	runeAt := func(x, y int) (rune, tcell.Style) {
		ch, _, style, _ := screen.GetContent(x, y)
		return ch, style
	}

	t.Run("walls are mirrored", func(t *testing.T) {
		ch, style := runeAt(22, 21)
		assert.Equal(t, '█', ch, "bottom-right corner is board (0, 0)")
		fg, _, _ := style.Decompose()
		wall := render.DefaultPalette[render.SpriteWall]
		assert.Equal(t, tcell.NewRGBColor(int32(wall.R), int32(wall.G), int32(wall.B)), fg)

		ch, _ = runeAt(23, 21)
		assert.Equal(t, '█', ch, "two columns per cell")
	})

	t.Run("ghost uses a shade", func(t *testing.T) {
		for x := 8; x < 16; x++ {
			ch, _ := runeAt(x, 20)
			assert.Equal(t, '░', ch, "column %d", x)
		}
	})

	t.Run("active piece is solid", func(t *testing.T) {
		for x := 8; x < 16; x++ {
			ch, _ := runeAt(x, 1)
			assert.Equal(t, '█', ch, "column %d", x)
		}
	})

	t.Run("empty interior stays blank", func(t *testing.T) {
		ch, _ := runeAt(20, 11)
		assert.Equal(t, ' ', ch)
	})

	t.Run("previews sit right of the board", func(t *testing.T) {
		ch, _ := runeAt(34, 3)
		assert.Equal(t, '█', ch)
	})

	t.Run("status line", func(t *testing.T) {
		ch, _ := runeAt(0, 23)
		assert.Equal(t, 'l', ch)
	})
}

func TestKeyInput(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want tetris.Input
		ok   bool
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), tetris.MoveLeft, true},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), tetris.MoveRight, true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), tetris.SoftDrop, true},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tetris.RotateCW, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), tetris.HardDrop, true},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), tetris.RotateCCW, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := term.KeyInput(tc.ev)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, term.IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, term.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, term.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
