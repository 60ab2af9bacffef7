package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var runeActions = map[rune]tetris.Input{
	'a': tetris.MoveLeft,
	'd': tetris.MoveRight,
	's': tetris.SoftDrop,
	' ': tetris.HardDrop,
	'x': tetris.RotateCW,
	'w': tetris.RotateCW,
	'z': tetris.RotateCCW,
}

// KeyInput maps a key event to a player action. Terminals report key
// repeats as fresh events, so every event is one action.
func KeyInput(ev *tcell.EventKey) (tetris.Input, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.MoveLeft, true
	case tcell.KeyRight:
		return tetris.MoveRight, true
	case tcell.KeyDown:
		return tetris.SoftDrop, true
	case tcell.KeyUp:
		return tetris.RotateCW, true
	case tcell.KeyRune:
		in, ok := runeActions[ev.Rune()]
		return in, ok
	}
	return 0, false
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
