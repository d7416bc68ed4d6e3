package logger

import (
	"sync/atomic"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/formatter"
	"github.com/philipp01105/facade/sink"
)

// Frames between the user's call site and log. Every public entry point
// calls log directly, so both paths are one frame deep.
const (
	methodSkip  = 1
	packageSkip = 1
)

// Logger checks the level, composes the message and hands its lines to the
// configured sink. It reads its Config on every call, so configuration
// changes apply to subsequent calls.
type Logger struct {
	cfg     *Config
	dropped atomic.Uint64
}

// New creates a logger reading cfg. A nil cfg uses NewConfig().
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Logger{cfg: cfg}
}

// Config returns the configuration the logger reads.
func (l *Logger) Config() *Config {
	return l.cfg
}

// Enabled reports whether a call at level would produce output.
func (l *Logger) Enabled(level core.Level) bool {
	return l.cfg.threshold.Enabled(level)
}

// Dropped returns the number of calls abandoned because a sink panicked.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Log logs at level with an optional tag and error. An empty tag is
// inferred from the caller.
func (l *Logger) Log(level core.Level, tag, msg string, err error) {
	l.log(methodSkip, level, tag, msg, nil, err)
}

// LogDepth is Log for wrappers: depth is the number of additional frames
// between the user's call site and LogDepth.
func (l *Logger) LogDepth(depth int, level core.Level, tag, msg string, err error) {
	l.log(methodSkip+depth, level, tag, msg, nil, err)
}

// log is the single entry of every public call. skip is the number of
// frames between the user's call site and log.
func (l *Logger) log(skip int, level core.Level, tag, msg string, produce func() string, err error) {
	// Level check before any work
	if !l.cfg.threshold.Enabled(level) {
		return
	}
	l.dispatch(skip+1, level, tag, msg, produce, err)
}

func (l *Logger) dispatch(skip int, level core.Level, tag, msg string, produce func() string, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.dropped.Add(1)
		}
	}()

	cfg := l.cfg
	appendCaller := cfg.appendCaller.Load()

	var caller core.CallerInfo
	if tag == "" || appendCaller {
		caller = core.ResolveCaller(skip + 1)
	}
	if tag == "" {
		tag = caller.Tag()
	}

	var position string
	if appendCaller && caller.Defined {
		position = caller.Position()
	}
	var thread *core.ThreadInfo
	if cfg.appendThread.Load() {
		info := core.CurrentThreadInfo()
		thread = &info
	}

	text := formatter.Decorate(formatter.Message(msg, produce, err), position, thread)
	lines := formatter.SplitLines(text)

	s := cfg.Sink()
	if bs, ok := s.(sink.BatchSink); ok {
		bs.DeliverLines(level, tag, lines)
		return
	}
	for _, line := range lines {
		s.Deliver(level, tag, line)
	}
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink         sink.Sink
	level        core.Level
	appendCaller bool
	appendThread bool
	initializer  Initializer
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables the caller position prefix
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.appendCaller = enabled
	return b
}

// WithThread enables the thread prefix
func (b *Builder) WithThread(enabled bool) *Builder {
	b.appendThread = enabled
	return b
}

// WithInitializer sets the strategy used by Config.Initialize
func (b *Builder) WithInitializer(init Initializer) *Builder {
	b.initializer = init
	return b
}

// Build creates the Logger instance with a fresh Config
func (b *Builder) Build() *Logger {
	cfg := NewConfig()
	cfg.SetLevel(b.level)
	cfg.SetSink(b.sink)
	cfg.AppendCaller(b.appendCaller)
	cfg.AppendThread(b.appendThread)
	cfg.SetInitializer(b.initializer)
	return New(cfg)
}
