// Package render holds the pieces shared by the blockfall front ends:
// sprite colors and the mapping from board coordinates to screen cells.
package render

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/plus3/blockfall/tetris"
)

// NumSprites covers the seven piece colors, the wall and the pending row
// marker.
const NumSprites = 9

const (
	SpriteWall    = int(tetris.Wall) - 1
	SpritePending = int(tetris.Pending) - 1
)

// Palette maps sprite indices to colors.
type Palette [NumSprites]color.RGBA

// DefaultPalette uses the guideline piece colors in I, J, L, O, S, T, Z
// order.
var DefaultPalette = Palette{
	{0, 240, 240, 255},
	{0, 0, 240, 255},
	{240, 160, 0, 255},
	{240, 240, 0, 255},
	{0, 240, 0, 255},
	{160, 0, 240, 255},
	{240, 0, 0, 255},
	{128, 128, 128, 255},
	{255, 255, 255, 255},
}

// Color returns the color of sprite. Unknown sprites are reported with
// ok == false and a magenta placeholder.
func (p *Palette) Color(sprite int) (c color.RGBA, ok bool) {
	if sprite < 0 || sprite >= NumSprites {
		return color.RGBA{255, 0, 255, 255}, false
	}
	return p[sprite], true
}

// Grid converts board coordinates into screen cells. Board x grows to the
// player's left and y grows up, so both axes are mirrored.
type Grid struct {
	Width, Height int
}

func NewGrid(b *tetris.Board) Grid {
	return Grid{Width: b.Width(), Height: b.Height()}
}

func (g Grid) Column(x int) int { return g.Width - 1 - x }
func (g Grid) Row(y int) int    { return g.Height - 1 - y }

// Cell returns the screen cell of a board coordinate.
func (g Grid) Cell(x, y int) image.Point {
	return image.Pt(g.Column(x), g.Row(y))
}

// Extent returns the screen cells covered by reqs, board and previews
// together. Max is exclusive.
func (g Grid) Extent(reqs []tetris.DrawRequest) image.Rectangle {
	var r image.Rectangle
	for i, req := range reqs {
		cell := g.Cell(req.X, req.Y)
		box := image.Rectangle{Min: cell, Max: cell.Add(image.Pt(1, 1))}
		if i == 0 {
			r = box
			continue
		}
		r = r.Union(box)
	}
	return r
}

// SortByDepth orders reqs back to front, keeping submission order for
// equal depths.
func SortByDepth(reqs []tetris.DrawRequest) {
	slices.SortStableFunc(reqs, func(a, b tetris.DrawRequest) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
}
