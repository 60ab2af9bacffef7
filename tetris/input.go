package tetris

// Input is a discrete player action.
type Input uint8

const (
	MoveLeft Input = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop

	numInputs
)

var inputNames = [numInputs]string{
	"MoveLeft", "MoveRight", "RotateCW", "RotateCCW", "SoftDrop", "HardDrop",
}

func (in Input) String() string {
	if in >= numInputs {
		return "Input(?)"
	}
	return inputNames[in]
}

// Inputs lists every action in declaration order.
func Inputs() []Input {
	all := make([]Input, numInputs)
	for i := range all {
		all[i] = Input(i)
	}
	return all
}

// EdgeTrigger turns held-key levels into one event per press.
type EdgeTrigger struct {
	held [numInputs]bool
}

// Update records whether in is held and reports a rising edge.
func (e *EdgeTrigger) Update(in Input, down bool) bool {
	if in >= numInputs {
		return false
	}
	rising := down && !e.held[in]
	e.held[in] = down
	return rising
}

// Reset forgets all held keys.
func (e *EdgeTrigger) Reset() {
	e.held = [numInputs]bool{}
}

// AutoRepeat decides when a held key fires again. Held is the number of
// frames the key has been down, starting at 1 on the press itself.
type AutoRepeat struct {
	Delay    int
	Interval int
}

// DefaultAutoRepeat fires on press, again after 10 frames, then every 3.
var DefaultAutoRepeat = AutoRepeat{Delay: 10, Interval: 3}

func (r AutoRepeat) Fire(held int) bool {
	switch {
	case held <= 0:
		return false
	case held == 1:
		return true
	case held < r.Delay || r.Interval <= 0:
		return false
	}
	return (held-r.Delay)%r.Interval == 0
}
