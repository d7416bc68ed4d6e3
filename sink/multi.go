package sink

import (
	"github.com/philipp01105/facade/core"
)

// MultiSink sends lines to multiple sinks
type MultiSink struct {
	sinks      []Sink
	batchSinks []BatchSink // cached BatchSink interfaces (nil when the sink doesn't implement it)
}

// Multi creates a sink fanning out to every given sink in order. Nop sinks
// are skipped.
func Multi(sinks ...Sink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s == nil || IsNop(s) {
			continue
		}
		m.sinks = append(m.sinks, s)
		bs, _ := s.(BatchSink)
		m.batchSinks = append(m.batchSinks, bs)
	}
	return m
}

// Deliver sends the line to every sink.
func (m *MultiSink) Deliver(level core.Level, tag, line string) {
	for _, s := range m.sinks {
		s.Deliver(level, tag, line)
	}
}

// DeliverLines sends the lines to every sink, as one batch where supported.
func (m *MultiSink) DeliverLines(level core.Level, tag string, lines []string) {
	for i, s := range m.sinks {
		if bs := m.batchSinks[i]; bs != nil {
			bs.DeliverLines(level, tag, lines)
			continue
		}
		for _, line := range lines {
			s.Deliver(level, tag, line)
		}
	}
}
