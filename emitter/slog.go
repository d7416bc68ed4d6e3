package emitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/facade/core"
)

// Slog levels for the two severities slog does not name.
const (
	SlogLevelVerbose = slog.LevelDebug - 4
	SlogLevelAssert  = slog.LevelError + 4
)

// TagKey is the attribute key carrying the tag on structured destinations.
const TagKey = "tag"

// SlogEmitter writes lines as slog records through a slog.Handler.
type SlogEmitter struct {
	handler slog.Handler
}

// NewSlog creates an emitter writing to h. The tag travels as the "tag"
// attribute and the line becomes the record message.
func NewSlog(h slog.Handler) *SlogEmitter {
	return &SlogEmitter{handler: h}
}

// Emit builds a record and passes it to the handler if it is enabled.
func (s *SlogEmitter) Emit(level core.Level, tag, line string) error {
	ctx := context.Background()
	lvl := LevelToSlog(level)
	if !s.handler.Enabled(ctx, lvl) {
		return nil
	}
	r := slog.NewRecord(time.Now(), lvl, line, 0)
	r.AddAttrs(slog.String(TagKey, tag))
	return s.handler.Handle(ctx, r)
}

// LevelToSlog maps a level onto the slog scale.
func LevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.VerboseLevel:
		return SlogLevelVerbose
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return SlogLevelAssert
	}
}

// LevelFromSlog maps a slog level onto the nearest level at or below it.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= SlogLevelAssert:
		return core.AssertLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
