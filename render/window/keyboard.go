package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

// Binding maps a key to a player action.
type Binding struct {
	Key    ebiten.Key
	Action tetris.Input
}

var DefaultBindings = []Binding{
	{ebiten.KeyArrowLeft, tetris.MoveLeft},
	{ebiten.KeyA, tetris.MoveLeft},
	{ebiten.KeyArrowRight, tetris.MoveRight},
	{ebiten.KeyD, tetris.MoveRight},
	{ebiten.KeyArrowDown, tetris.SoftDrop},
	{ebiten.KeyS, tetris.SoftDrop},
	{ebiten.KeySpace, tetris.HardDrop},
	{ebiten.KeyArrowUp, tetris.RotateCW},
	{ebiten.KeyX, tetris.RotateCW},
	{ebiten.KeyZ, tetris.RotateCCW},
}

// Keyboard turns ebiten key state into player actions once per frame.
// Moves and soft drop auto-repeat while held; rotations fire once per
// press; hard drop fires on the press only.
type Keyboard struct {
	Bindings []Binding
	Repeat   tetris.AutoRepeat

	rotate tetris.EdgeTrigger
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings: DefaultBindings,
		Repeat:   tetris.DefaultAutoRepeat,
	}
}

// Poll appends this frame's actions to dst.
func (k *Keyboard) Poll(dst []tetris.Input) []tetris.Input {
	var rotDown [2]bool
	for _, b := range k.Bindings {
		switch b.Action {
		case tetris.RotateCW:
			rotDown[0] = rotDown[0] || ebiten.IsKeyPressed(b.Key)
		case tetris.RotateCCW:
			rotDown[1] = rotDown[1] || ebiten.IsKeyPressed(b.Key)
		case tetris.HardDrop:
			if inpututil.IsKeyJustPressed(b.Key) {
				dst = append(dst, b.Action)
			}
		default:
			if k.Repeat.Fire(inpututil.KeyPressDuration(b.Key)) {
				dst = append(dst, b.Action)
			}
		}
	}

	if k.rotate.Update(tetris.RotateCW, rotDown[0]) {
		dst = append(dst, tetris.RotateCW)
	}
	if k.rotate.Update(tetris.RotateCCW, rotDown[1]) {
		dst = append(dst, tetris.RotateCCW)
	}
	return dst
}

// Release forgets held rotation keys, used when another layer takes the
// keyboard.
func (k *Keyboard) Release() {
	k.rotate.Reset()
}
