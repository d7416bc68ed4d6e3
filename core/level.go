package core

import (
	"math"
	"strings"
	"sync/atomic"
)

// Level represents the severity of a log request
type Level int8

const (
	// VerboseLevel for the most detailed tracing output
	VerboseLevel Level = iota + 2
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// AssertLevel for conditions that should never happen
	AssertLevel
)

// SuppressLevel is above every real level. A threshold set to it
// suppresses all output.
const SuppressLevel Level = math.MaxInt8

// LevelCount is the number of real levels, VerboseLevel through AssertLevel.
const LevelCount = int(AssertLevel-VerboseLevel) + 1

// Levels returns all real levels in ascending order.
func Levels() []Level {
	return []Level{
		VerboseLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		AssertLevel,
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case AssertLevel:
		return "ASSERT"
	case SuppressLevel:
		return "SUPPRESS"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single character label used by line printers.
func (l Level) Letter() string {
	switch l {
	case VerboseLevel:
		return "V"
	case DebugLevel:
		return "D"
	case InfoLevel:
		return "I"
	case WarnLevel:
		return "W"
	case ErrorLevel:
		return "E"
	case AssertLevel:
		return "A"
	default:
		return " "
	}
}

// Valid reports whether l is one of the real levels.
func (l Level) Valid() bool {
	return l >= VerboseLevel && l <= AssertLevel
}

// Index returns the zero-based position of a real level, or -1.
func (l Level) Index() int {
	if !l.Valid() {
		return -1
	}
	return int(l - VerboseLevel)
}

// ParseLevel converts a string to a Level. Unknown names map to SuppressLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "V":
		return VerboseLevel
	case "DEBUG", "D":
		return DebugLevel
	case "INFO", "I":
		return InfoLevel
	case "WARN", "WARNING", "W":
		return WarnLevel
	case "ERROR", "E":
		return ErrorLevel
	case "ASSERT", "A":
		return AssertLevel
	default:
		return SuppressLevel
	}
}

// Registry holds the minimum severity that passes the filter.
// The threshold is a single word; readers never observe a partial update.
type Registry struct {
	threshold atomic.Int32
}

// NewRegistry returns a registry that suppresses everything.
func NewRegistry() *Registry {
	r := &Registry{}
	r.threshold.Store(int32(SuppressLevel))
	return r
}

// Set stores a new threshold, visible to all subsequent Enabled calls.
func (r *Registry) Set(level Level) {
	r.threshold.Store(int32(level))
}

// Level returns the current threshold.
func (r *Registry) Level() Level {
	return Level(r.threshold.Load())
}

// Enabled reports whether level passes the current threshold.
func (r *Registry) Enabled(level Level) bool {
	return int32(level) >= r.threshold.Load()
}
