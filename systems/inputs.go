package systems

import "github.com/plus3/blockfall/tetris"

// Inputs buffers player actions between ticks. It is owned by the loop
// goroutine; front ends that read events elsewhere forward them first.
type Inputs struct {
	pending []tetris.Input
}

// Push queues an action for the next tick.
func (in *Inputs) Push(actions ...tetris.Input) {
	in.pending = append(in.pending, actions...)
}

// Drain returns the queued actions in arrival order and empties the buffer.
// The returned slice is only valid until the next Push.
func (in *Inputs) Drain() []tetris.Input {
	out := in.pending
	in.pending = in.pending[:0]
	return out
}

func (in *Inputs) Len() int { return len(in.pending) }
