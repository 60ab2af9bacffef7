package debugui

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// NewOverlay builds the standard set of debug windows and registers the
// overlay system with scheduler.
func NewOverlay(scheduler *loop.Scheduler, session *tetris.Session, seed uint64, palette render.Palette) *Overlay {
	overlay := &Overlay{}
	overlay.Add(
		NewBoardInspector(session, palette).Item(),
		NewSessionPanel(session, seed).Item(),
		NewPerformanceStats(scheduler, 120).Item(),
	)
	scheduler.Register(&OverlaySystem{Overlay: overlay})
	return overlay
}
