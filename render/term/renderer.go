// Package term draws blockfall into a terminal with tcell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

const (
	solidRune = '█'
	ghostRune = '░'

	// cellColumns is the number of terminal columns per board cell, which
	// keeps cells roughly square in most fonts.
	cellColumns = 2
)

// Renderer draws each frame straight to a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	grid    render.Grid
	palette render.Palette
	styles  *intmap.Map[int, tcell.Style]

	frame  []tetris.DrawRequest
	status string
}

func NewRenderer(screen tcell.Screen, grid render.Grid, palette render.Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		grid:    grid,
		palette: palette,
		styles:  intmap.New[int, tcell.Style](2 * render.NumSprites),
	}
}

// SetStatus sets a line of text shown under the board.
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// Draw paints reqs and shows the screen. It implements tetris.Renderer.
func (r *Renderer) Draw(reqs []tetris.DrawRequest) {
	r.frame = append(r.frame[:0], reqs...)
	render.SortByDepth(r.frame)

	r.screen.Clear()
	for _, req := range r.frame {
		cell := r.grid.Cell(req.X, req.Y)
		if cell.X < 0 || cell.Y < 0 {
			continue
		}
		ghost := req.Alpha < 1
		ch := solidRune
		if ghost {
			ch = ghostRune
		}
		style := r.style(req.Sprite, ghost)
		for i := range cellColumns {
			r.screen.SetContent(cell.X*cellColumns+i, cell.Y, ch, nil, style)
		}
	}

	if r.status != "" {
		row := r.grid.Height + 1
		for i, ch := range []rune(r.status) {
			r.screen.SetContent(i, row, ch, nil, tcell.StyleDefault)
		}
	}
	r.screen.Show()
}

func (r *Renderer) style(sprite int, ghost bool) tcell.Style {
	key := sprite * 2
	if ghost {
		key++
	}
	if st, ok := r.styles.Get(key); ok {
		return st
	}

	c, _ := r.palette.Color(sprite)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	if ghost {
		st = st.Dim(true)
	}
	r.styles.Put(key, st)
	return st
}
