package logger

import (
	"sync/atomic"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/sink"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(NewConfig()))
}

// Default returns the default logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

// Reset installs a fresh default logger with NewConfig(). The previous
// logger and its sink are left untouched.
func Reset() {
	defaultLogger.Store(New(NewConfig()))
}

// Package-level configuration of the default logger

// SetLevel sets the threshold of the default logger
func SetLevel(level core.Level) {
	Default().cfg.SetLevel(level)
}

// SetSink sets the sink of the default logger
func SetSink(s sink.Sink) {
	Default().cfg.SetSink(s)
}

// AppendCaller toggles the caller prefix of the default logger
func AppendCaller(enabled bool) {
	Default().cfg.AppendCaller(enabled)
}

// AppendThread toggles the thread prefix of the default logger
func AppendThread(enabled bool) {
	Default().cfg.AppendThread(enabled)
}

// SetInitializer sets the initializer of the default logger
func SetInitializer(init Initializer) {
	Default().cfg.SetInitializer(init)
}

// Initialize runs the default logger's initializer
func Initialize(debug, verbose bool) {
	Default().cfg.Initialize(debug, verbose)
}

// Enabled reports whether the default logger emits at level
func Enabled(level core.Level) bool {
	return Default().Enabled(level)
}

// Log logs at level using the default logger
func Log(level core.Level, tag, msg string, err error) {
	Default().log(packageSkip, level, tag, msg, nil, err)
}

// LogDepth logs at level using the default logger, skipping depth
// additional frames when resolving the caller
func LogDepth(depth int, level core.Level, tag, msg string, err error) {
	Default().log(packageSkip+depth, level, tag, msg, nil, err)
}
