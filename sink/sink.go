package sink

import (
	"github.com/philipp01105/facade/core"
)

// Sink receives one log line at a time. Deliver must not block the caller
// on I/O it does not own and must not panic into the caller; the logger
// recovers anyway.
type Sink interface {
	Deliver(level core.Level, tag, line string)
}

// BatchSink is an optional interface for sinks that can take all lines of
// one log call at once. Affine sinks use it to post a single task per call,
// so lines of one call are never interleaved with lines of another.
type BatchSink interface {
	DeliverLines(level core.Level, tag string, lines []string)
}

// Func adapts a function to the Sink interface.
type Func func(level core.Level, tag, line string)

// Deliver calls f.
func (f Func) Deliver(level core.Level, tag, line string) {
	f(level, tag, line)
}

type nop struct{}

func (nop) Deliver(core.Level, string, string)        {}
func (nop) DeliverLines(core.Level, string, []string) {}

// Nop returns a sink that discards everything.
func Nop() Sink {
	return nop{}
}

// IsNop reports whether s is the sink returned by Nop.
func IsNop(s Sink) bool {
	_, ok := s.(nop)
	return ok
}

// Option configures a sink.
type Option func(*options)

type options struct {
	onError func(error)
}

// WithErrorHandler installs a callback receiving emitter errors and
// recovered emitter panics. Without it they are discarded.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
