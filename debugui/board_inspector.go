package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector draws the board as a grid of colored cells with the
// active piece overlaid, plus the raw pending rows.
type BoardInspector struct {
	session  *tetris.Session
	palette  render.Palette
	cellSize float32
	showRaw  bool
}

func NewBoardInspector(session *tetris.Session, palette render.Palette) *BoardInspector {
	return &BoardInspector{
		session:  session,
		palette:  palette,
		cellSize: 10,
	}
}

func (bi *BoardInspector) Item() Item {
	return Item{Render: bi.Render}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 280), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := bi.session.Board()
	grid := render.NewGrid(board)
	piece := bi.session.Piece()
	own := make(map[tetris.Point]tetris.Cell, 4)
	for pt, c := range piece.Cells() {
		own[pt] = c
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for y := range board.Height() {
		for x := range board.Width() {
			c := board.At(x, y)
			if pc, ok := own[tetris.Point{X: x, Y: y}]; ok {
				c = pc
			}
			if c == tetris.Empty {
				continue
			}

			cell := grid.Cell(x, y)
			lo := imgui.NewVec2(origin.X+float32(cell.X)*bi.cellSize, origin.Y+float32(cell.Y)*bi.cellSize)
			hi := imgui.NewVec2(lo.X+bi.cellSize-1, lo.Y+bi.cellSize-1)
			drawList.AddRectFilled(lo, hi, bi.color(int(c)-1))
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(board.Width())*bi.cellSize, float32(board.Height())*bi.cellSize))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Size: %dx%d", board.Width(), board.Height()))
	imgui.Text(fmt.Sprintf("Pending rows: %v", board.Pending()))

	imgui.Checkbox("Raw cells", &bi.showRaw)
	if bi.showRaw {
		for y := board.Height() - 1; y >= 0; y-- {
			var sb strings.Builder
			for _, c := range board.Row(y) {
				sb.WriteByte('0' + byte(c))
			}
			imgui.Text(fmt.Sprintf("%2d %s", y, sb.String()))
		}
	}

	imgui.End()
}

func (bi *BoardInspector) color(sprite int) uint32 {
	c, _ := bi.palette.Color(sprite)
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
		1.0,
	))
}
