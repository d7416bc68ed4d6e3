// Package benchmark compares the facade against the logging libraries it
// can emit through, and measures its own delivery paths.
package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/sink"
)

var (
	_ sink.Sink      = (*noopSink)(nil)
	_ sink.BatchSink = (*noopSink)(nil)
)

// noopSink counts lines without writing them, isolating dispatch cost.
type noopSink struct {
	lines atomic.Uint64
}

func newNoopSink() *noopSink {
	return &noopSink{}
}

func (s *noopSink) Deliver(core.Level, string, string) {
	s.lines.Add(1)
}

func (s *noopSink) DeliverLines(_ core.Level, _ string, lines []string) {
	s.lines.Add(uint64(len(lines)))
}

func (s *noopSink) count() uint64 {
	return s.lines.Load()
}
