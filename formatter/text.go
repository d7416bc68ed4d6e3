package formatter

import (
	"bytes"
	"io"
)

// DefaultTimestampFormat matches "yyyy-MM-dd HH:mm:ss.SSS".
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// TextFormatter renders lines as "<time> <L> [<tag>] <text>".
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a line as text
func (f *TextFormatter) Format(line *Line) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatLine(line, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a line and writes it directly to the writer
func (f *TextFormatter) FormatTo(line *Line, w io.Writer) error {
	buf := getBuffer()

	f.FormatLine(line, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatLine writes the formatted line into the given buffer
func (f *TextFormatter) FormatLine(line *Line, buf *bytes.Buffer) {
	if !f.OmitTimestamp {
		// AppendFormat avoids a string allocation
		buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	buf.WriteString(line.Level.Letter())
	buf.WriteString(" [")
	buf.WriteString(line.Tag)
	buf.WriteString("] ")
	buf.WriteString(line.Text)
	buf.WriteByte('\n')
}
