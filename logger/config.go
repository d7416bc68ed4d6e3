package logger

import (
	"sync/atomic"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/sink"
)

type sinkHolder struct {
	sink sink.Sink
}

type initializerHolder struct {
	init Initializer
}

// Config is the mutable state consulted by a Logger on every call.
// Each field is an independent atomic word: readers never see a torn value,
// but updating several fields together is not atomic as a whole.
type Config struct {
	threshold    *core.Registry
	sink         atomic.Pointer[sinkHolder]
	appendCaller atomic.Bool
	appendThread atomic.Bool
	initializer  atomic.Pointer[initializerHolder]
}

// NewConfig returns a configuration that suppresses everything and writes
// to the Nop sink.
func NewConfig() *Config {
	c := &Config{threshold: core.NewRegistry()}
	c.sink.Store(&sinkHolder{sink: sink.Nop()})
	return c
}

// SetLevel sets the minimum level that is emitted.
func (c *Config) SetLevel(level core.Level) {
	c.threshold.Set(level)
}

// Level returns the current threshold.
func (c *Config) Level() core.Level {
	return c.threshold.Level()
}

// Enabled reports whether level passes the threshold.
func (c *Config) Enabled(level core.Level) bool {
	return c.threshold.Enabled(level)
}

// SetSink replaces the sink. A nil sink installs Nop.
func (c *Config) SetSink(s sink.Sink) {
	if s == nil {
		s = sink.Nop()
	}
	c.sink.Store(&sinkHolder{sink: s})
}

// Sink returns the current sink.
func (c *Config) Sink() sink.Sink {
	return c.sink.Load().sink
}

// AppendCaller toggles the "position : " prefix.
func (c *Config) AppendCaller(enabled bool) {
	c.appendCaller.Store(enabled)
}

// AppendThread toggles the "[name,priority,group] " prefix.
func (c *Config) AppendThread(enabled bool) {
	c.appendThread.Store(enabled)
}

// CallerAppended reports whether the caller prefix is on.
func (c *Config) CallerAppended() bool {
	return c.appendCaller.Load()
}

// ThreadAppended reports whether the thread prefix is on.
func (c *Config) ThreadAppended() bool {
	return c.appendThread.Load()
}

// SetInitializer replaces the strategy used by Initialize. A nil
// initializer restores DefaultInitializer.
func (c *Config) SetInitializer(init Initializer) {
	if init == nil {
		c.initializer.Store(nil)
		return
	}
	c.initializer.Store(&initializerHolder{init: init})
}

// Initialize configures c for a debug or release build through the
// installed initializer, DefaultInitializer when none was set.
func (c *Config) Initialize(debug, verbose bool) {
	init := DefaultInitializer
	if h := c.initializer.Load(); h != nil {
		init = h.init
	}
	init.Initialize(c, debug, verbose)
}
