package logger

import (
	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
	"github.com/philipp01105/facade/looper"
	"github.com/philipp01105/facade/sink"
)

// Initializer applies a debug or release setup to a Config.
type Initializer interface {
	Initialize(cfg *Config, debug, verbose bool)
}

// InitializerFunc adapts a function to the Initializer interface.
type InitializerFunc func(cfg *Config, debug, verbose bool)

// Initialize calls f.
func (f InitializerFunc) Initialize(cfg *Config, debug, verbose bool) {
	f(cfg, debug, verbose)
}

// SinkInitializer returns the standard setup around a sink factory.
//
// With debug set, everything from VerboseLevel up is written to the sink
// returned by newSink, and caller and thread prefixes follow verbose.
// Otherwise all output is suppressed, prefixes are off and the sink is Nop.
func SinkInitializer(newSink func() sink.Sink) Initializer {
	return InitializerFunc(func(cfg *Config, debug, verbose bool) {
		if debug {
			cfg.AppendCaller(verbose)
			cfg.AppendThread(verbose)
			cfg.SetLevel(core.VerboseLevel)
			cfg.SetSink(newSink())
			return
		}
		cfg.AppendCaller(false)
		cfg.AppendThread(false)
		cfg.SetLevel(core.SuppressLevel)
		cfg.SetSink(sink.Nop())
	})
}

func consoleEmitter() emitter.Emitter {
	return emitter.NewConsole(emitter.ConsoleConfig{CoarseClock: true})
}

// DefaultInitializer writes to stdout on the calling goroutine.
var DefaultInitializer = SinkInitializer(func() sink.Sink {
	return sink.NewDirect(consoleEmitter())
})

// MainThreadInitializer writes to stdout from the goroutine running l.Loop.
func MainThreadInitializer(l *looper.Looper) Initializer {
	return SinkInitializer(func() sink.Sink {
		return sink.NewMainThread(l, consoleEmitter())
	})
}

// SingleThreadInitializer writes to stdout from the shared logging worker.
func SingleThreadInitializer() Initializer {
	return SinkInitializer(func() sink.Sink {
		return sink.NewSingleThread(consoleEmitter())
	})
}
