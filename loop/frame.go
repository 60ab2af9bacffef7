package loop

// Frame is handed to every system during one tick.
type Frame struct {
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
}
