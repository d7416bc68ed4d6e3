// Package logrusemitter forwards log lines to a logrus logger.
package logrusemitter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
)

var _ emitter.Emitter = (*Emitter)(nil)

// Emitter writes lines through a *logrus.Logger.
type Emitter struct {
	logger *logrus.Logger
}

// New wraps an existing logrus logger.
func New(logger *logrus.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// NewText builds a logrus logger with the text formatter writing to w at
// the trace level.
func NewText(w io.Writer) *Emitter {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return New(l)
}

// Emit writes one line at the mapped logrus level with the tag as a field.
func (e *Emitter) Emit(level core.Level, tag, line string) error {
	lvl := Level(level)
	if !e.logger.IsLevelEnabled(lvl) {
		return nil
	}
	e.logger.WithField(emitter.TagKey, tag).Log(lvl, line)
	return nil
}

// Level maps a level onto logrus. Assert maps to Error, as logrus Panic and
// Fatal end the goroutine or the process.
func Level(level core.Level) logrus.Level {
	switch level {
	case core.VerboseLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
