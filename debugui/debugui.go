// Package debugui draws Dear ImGui debug windows over a running blockfall
// session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function run once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of debug windows drawn each frame.
type Overlay struct {
	Items []Item
	Input InputState
}

func (o *Overlay) Add(items ...Item) {
	o.Items = append(o.Items, items...)
}

// InputCapture reports whether game input should be ignored because an
// ImGui widget owns the keyboard.
func (o *Overlay) InputCapture() bool {
	return o.Input.WantCaptureKeyboard
}

// OverlaySystem updates the input state and defers every item's render
// function until the end of the tick, after the game systems have run.
type OverlaySystem struct {
	Overlay *Overlay
}

func (s *OverlaySystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.Overlay.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Overlay.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Overlay.Items {
		frame.Commands.Defer(item.Render)
	}
}
