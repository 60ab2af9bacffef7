package loop

import (
	"context"
	"reflect"
	"time"
)

const (
	// DefaultStep is the length of one simulation tick.
	DefaultStep = 16 * time.Millisecond

	// maxCatchUp bounds how many ticks a single Advance may run. Time
	// beyond that is dropped so a stalled process does not spiral.
	maxCatchUp = 8
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	DroppedTicks    uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems once per fixed step.
type Scheduler struct {
	step        time.Duration
	systems     []System
	systemStats []*systemStatsInternal
	commands    Commands

	tick    uint64
	dropped uint64
	backlog time.Duration
}

// NewScheduler creates a scheduler with the given tick length. A
// non-positive step selects DefaultStep.
func NewScheduler(step time.Duration) *Scheduler {
	if step <= 0 {
		step = DefaultStep
	}
	return &Scheduler{
		step:    step,
		systems: make([]System, 0),
	}
}

func (s *Scheduler) Step() time.Duration { return s.step }

// Tick returns the number of ticks executed so far.
func (s *Scheduler) Tick() uint64 { return s.tick }

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	if named, ok := system.(interface{ Name() string }); ok {
		return named.Name()
	}
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if systemType.Name() == "" {
		return systemType.String()
	}
	return systemType.Name()
}

// Once executes every registered system for one tick, then flushes the
// deferred commands.
func (s *Scheduler) Once() {
	s.tick++
	frame := &Frame{
		Tick:      s.tick,
		DeltaTime: s.step.Seconds(),
		Commands:  &s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush()
}

// Advance adds elapsed wall time to the backlog and runs as many whole
// ticks as it covers. It returns the number of ticks run.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.backlog += elapsed
	}

	ran := 0
	for s.backlog >= s.step && ran < maxCatchUp {
		s.Once()
		s.backlog -= s.step
		ran++
	}

	if s.backlog >= s.step {
		s.dropped += uint64(s.backlog / s.step)
		s.backlog %= s.step
	}
	return ran
}

// Run advances the scheduler from a ticker until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.step)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Advance(now.Sub(lastTime))
			lastTime = now
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		Ticks:        s.tick,
		DroppedTicks: s.dropped,
		Systems:      make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
