package emitter

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/formatter"
)

// ConsoleConfig holds configuration for the console emitter
type ConsoleConfig struct {
	// Writer is the output destination (default: os.Stdout)
	Writer io.Writer
	// Formatter renders each line (default: text formatter)
	Formatter formatter.Formatter
	// CoarseClock stamps lines from the cached millisecond clock instead
	// of calling time.Now() per line
	CoarseClock bool
}

// Console writes formatted lines to an io.Writer. Writes are serialized so
// lines from different goroutines never interleave.
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	now             func() time.Time
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
}

// NewConsole creates a console emitter
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	c := &Console{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		now:       time.Now,
	}
	if bf, ok := cfg.Formatter.(formatter.BufferFormatter); ok {
		c.bufferFormatter = bf
	}
	if cfg.CoarseClock {
		core.StartCoarseClock()
		c.now = core.CoarseNow
	}
	return c
}

// Emit formats and writes one line.
func (c *Console) Emit(level core.Level, tag, line string) error {
	l := formatter.Line{Time: c.now(), Level: level, Tag: tag, Text: line}

	if c.bufferFormatter != nil {
		c.mu.Lock()
		c.buf.Reset()
		c.bufferFormatter.FormatLine(&l, &c.buf)
		_, err := c.writer.Write(c.buf.Bytes())
		c.mu.Unlock()
		return err
	}

	data, err := c.formatter.Format(&l)
	if err != nil {
		return err
	}
	c.mu.Lock()
	_, err = c.writer.Write(data)
	c.mu.Unlock()
	return err
}

// Close flushes the writer when it supports syncing. Standard streams are
// left open.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writer == os.Stdout || c.writer == os.Stderr {
		return nil
	}
	if s, ok := c.writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
