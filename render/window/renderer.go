// Package window draws blockfall into an ebiten window.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

var background = color.RGBA{24, 24, 28, 255}

// Renderer keeps the last frame pushed by the loop and paints it when
// ebiten asks for a draw.
type Renderer struct {
	grid     render.Grid
	cellSize int
	palette  render.Palette

	frame  []tetris.DrawRequest
	extent image.Rectangle
	tiles  *intmap.Map[int, *ebiten.Image]
}

func NewRenderer(grid render.Grid, cellSize int, palette render.Palette) *Renderer {
	return &Renderer{
		grid:     grid,
		cellSize: cellSize,
		palette:  palette,
		extent:   image.Rect(0, 0, grid.Width, grid.Height),
		tiles:    intmap.New[int, *ebiten.Image](render.NumSprites),
	}
}

// Draw stores reqs sorted by depth. It implements tetris.Renderer.
func (r *Renderer) Draw(reqs []tetris.DrawRequest) {
	r.frame = append(r.frame[:0], reqs...)
	render.SortByDepth(r.frame)
	r.extent = r.extent.Union(r.grid.Extent(r.frame))
}

// Size returns the pixel size needed to show every cell drawn so far.
func (r *Renderer) Size() (int, int) {
	return r.extent.Dx() * r.cellSize, r.extent.Dy() * r.cellSize
}

// Paint draws the stored frame onto screen.
func (r *Renderer) Paint(screen *ebiten.Image) {
	screen.Fill(background)

	cs := float64(r.cellSize)
	for _, req := range r.frame {
		tile := r.tile(req.Sprite)
		cell := r.grid.Cell(req.X, req.Y).Sub(r.extent.Min)

		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(cell.X)*cs, float64(cell.Y)*cs)
		if req.Alpha < 1 {
			opts.ColorScale.ScaleAlpha(req.Alpha)
		}
		screen.DrawImage(tile, opts)
	}
}

func (r *Renderer) tile(sprite int) *ebiten.Image {
	if img, ok := r.tiles.Get(sprite); ok {
		return img
	}

	c, _ := r.palette.Color(sprite)
	img := ebiten.NewImage(r.cellSize, r.cellSize)
	size := float32(r.cellSize)
	vector.DrawFilledRect(img, 1, 1, size-2, size-2, c, false)
	if sprite != render.SpriteWall {
		vector.StrokeRect(img, 1, 1, size-2, size-2, 1, color.RGBA{255, 255, 255, 60}, false)
	}

	r.tiles.Put(sprite, img)
	return img
}
