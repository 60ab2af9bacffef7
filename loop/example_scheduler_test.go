package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/loop"
)

type TickCounter struct {
	Ticks int
}

func (s *TickCounter) Execute(frame *loop.Frame) {
	s.Ticks++
}

// ExampleScheduler shows systems running in registration order, with work
// deferred through Commands running after the last system.
func ExampleScheduler() {
	scheduler := loop.NewScheduler(16 * time.Millisecond)
	counter := &TickCounter{}

	scheduler.Register(counter)
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		frame.Commands.Defer(func() {
			fmt.Printf("tick %d done, counter=%d\n", frame.Tick, counter.Ticks)
		})
	}))

	scheduler.Once()
	scheduler.Advance(32 * time.Millisecond)

	// Output:
	// tick 1 done, counter=1
	// tick 2 done, counter=2
	// tick 3 done, counter=3
}

// ExampleScheduler_Run drives the scheduler from wall time until the
// context is cancelled.
func ExampleScheduler_Run() {
	scheduler := loop.NewScheduler(16 * time.Millisecond)
	scheduler.Register(&TickCounter{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
