// Package zapemitter forwards log lines to a zap logger.
package zapemitter

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
)

var _ emitter.Emitter = (*Emitter)(nil)

// Emitter writes lines through a *zap.Logger. The tag is attached as the
// "tag" field.
type Emitter struct {
	logger *zap.Logger
}

// New wraps an existing zap logger.
func New(logger *zap.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// NewConsole builds a zap logger with a console encoder writing to w and
// enabled for every level.
func NewConsole(w io.Writer) *Emitter {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	zcore := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return New(zap.New(zcore))
}

// NewJSON builds a zap logger with the production JSON encoder writing to w.
func NewJSON(w io.Writer) *Emitter {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	zcore := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return New(zap.New(zcore))
}

// Emit writes one line at the mapped zap level.
func (e *Emitter) Emit(level core.Level, tag, line string) error {
	if ce := e.logger.Check(Level(level), line); ce != nil {
		ce.Write(zap.String(emitter.TagKey, tag))
	}
	return nil
}

// Close flushes buffered entries.
func (e *Emitter) Close() error {
	return e.logger.Sync()
}

// Level maps a level onto zap. Verbose shares zap's Debug level and Assert
// maps to Error, since zap's DPanic and above may panic or exit.
func Level(level core.Level) zapcore.Level {
	switch level {
	case core.VerboseLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
