package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/facade/core"
)

// Line is one single-line record handed to a line printer.
type Line struct {
	Time  time.Time
	Level core.Level
	Tag   string
	Text  string
}

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format renders a line into bytes, including the trailing newline
	Format(line *Line) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders a line and writes it directly to the writer
	FormatTo(line *Line, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to render directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatLine renders a line into the given buffer.
	FormatLine(line *Line, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (default differs per formatter)
	TimestampFormat string
	// OmitTimestamp drops the time from the output, e.g. when the
	// destination stamps lines itself
	OmitTimestamp bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
