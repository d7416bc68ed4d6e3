// Package zeroemitter forwards log lines to a zerolog logger.
package zeroemitter

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
)

var _ emitter.Emitter = (*Emitter)(nil)

// Emitter writes lines through a zerolog.Logger.
type Emitter struct {
	logger zerolog.Logger
}

// New wraps an existing zerolog logger.
func New(logger zerolog.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// NewWriter builds a timestamped zerolog logger writing JSON to w at the
// trace level.
func NewWriter(w io.Writer) *Emitter {
	return New(zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger())
}

// NewConsole builds a zerolog logger with the human readable console writer.
func NewConsole(w io.Writer) *Emitter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return New(zerolog.New(cw).Level(zerolog.TraceLevel).With().Timestamp().Logger())
}

// Emit writes one line at the mapped zerolog level. The tag travels as the
// "tag" field.
func (e *Emitter) Emit(level core.Level, tag, line string) error {
	ev := e.logger.WithLevel(Level(level))
	if ev == nil {
		return nil
	}
	ev.Str(emitter.TagKey, tag).Msg(line)
	return nil
}

// Level maps a level onto zerolog. Assert maps to Error because zerolog's
// Fatal and Panic levels are reserved for process-ending events.
func Level(level core.Level) zerolog.Level {
	switch level {
	case core.VerboseLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
