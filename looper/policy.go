package looper

import (
	"sync/atomic"

	"github.com/philipp01105/facade/core"
)

// OverflowPolicy defines how to handle a full task queue
type OverflowPolicy int

const (
	// DropNewest drops the task being posted when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued task to make room
	DropOldest
	// Block blocks the poster until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies.
// No level stalls the poster; Block has to be requested explicitly through
// Config.OverflowPolicy, and even then a dropped task is never run off the
// target goroutine.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.VerboseLevel: DropNewest,
		core.DebugLevel:   DropNewest,
		core.InfoLevel:    DropNewest,
		core.WarnLevel:    DropNewest,
		core.ErrorLevel:   DropNewest,
		core.AssertLevel:  DropNewest,
	}
}

// Stats tracks queue statistics
type Stats struct {
	// dropped holds one counter per real level, indexed by Level.Index
	dropped [core.LevelCount]atomic.Uint64
	// blocked counts posts that hit the block timeout
	blocked atomic.Uint64
	// processed counts tasks that ran to completion
	processed atomic.Uint64
	// failed counts tasks that panicked
	failed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level.
// Levels outside the real range are counted as Assert.
func (s *Stats) IncrementDropped(level core.Level) {
	idx := level.Index()
	if idx < 0 {
		idx = core.AssertLevel.Index()
	}
	s.dropped[idx].Add(1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	idx := level.Index()
	if idx < 0 {
		return 0
	}
	return s.dropped[idx].Load()
}

// GetBlocked returns the blocked count
func (s *Stats) GetBlocked() uint64 {
	return s.blocked.Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, core.LevelCount)
	for _, l := range core.Levels() {
		dropped[l] = s.GetDropped(l)
	}
	return Snapshot{
		DroppedTotal:   dropped,
		BlockedTotal:   s.GetBlocked(),
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
	}
}
