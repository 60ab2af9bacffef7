package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// SessionPanel shows the active piece, the preview queue and the running
// counters.
type SessionPanel struct {
	session *tetris.Session
	seed    uint64
}

func NewSessionPanel(session *tetris.Session, seed uint64) *SessionPanel {
	return &SessionPanel{session: session, seed: seed}
}

func (sp *SessionPanel) Item() Item {
	return Item{Render: sp.Render}
}

func (sp *SessionPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(240, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 280), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	piece := sp.session.Piece()
	gx, gy := piece.Ghost(sp.session.Board())
	imgui.Text(fmt.Sprintf("Seed: %d", sp.seed))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d)", piece.Kind(), piece.X, piece.Y))
	imgui.Text(fmt.Sprintf("Rotation: %d", piece.Rotation()))
	imgui.Text(fmt.Sprintf("Ghost: (%d, %d)", gx, gy))

	if at, ok := sp.session.ClearScheduled(); ok {
		imgui.Text(fmt.Sprintf("Clear at tick %d", at))
	} else {
		imgui.Text("No clear scheduled")
	}

	stats := sp.session.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Resets: %d", stats.Resets))

	if imgui.TreeNodeStr("Queue") {
		for i, k := range sp.session.Queue().All() {
			imgui.BulletText(fmt.Sprintf("%d: %s", i, k))
		}
		imgui.TreePop()
	}

	opts := sp.session.Options()
	if imgui.TreeNodeStr("Options") {
		imgui.Text(fmt.Sprintf("Gravity: every %d ticks", opts.GravityTicks))
		imgui.Text(fmt.Sprintf("Clear delay: %d ticks", opts.ClearDelay))
		imgui.Text(fmt.Sprintf("Preview: %d", opts.PreviewLength))
		imgui.TreePop()
	}

	imgui.End()
}
