package logger

import (
	"github.com/philipp01105/facade/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	VerboseLevel  = core.VerboseLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	AssertLevel   = core.AssertLevel
	SuppressLevel = core.SuppressLevel
)

// ParseLevel converts a string to a Level. Unknown names suppress output.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
