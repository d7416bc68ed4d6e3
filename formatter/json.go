package formatter

import (
	"bytes"
	"io"
	"time"
)

// JSONFormatter renders each line as one JSON object
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a line as JSON
func (f *JSONFormatter) Format(line *Line) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatLine(line, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a line as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(line *Line, w io.Writer) error {
	buf := getBuffer()

	f.FormatLine(line, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatLine builds JSON manually into the buffer without allocations
func (f *JSONFormatter) FormatLine(line *Line, buf *bytes.Buffer) {
	buf.WriteByte('{')

	if !f.OmitTimestamp {
		buf.WriteString(`"time":"`)
		buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteString(`",`)
	}

	buf.WriteString(`"level":"`)
	buf.WriteString(line.Level.String())
	buf.WriteString(`","tag":"`)
	appendJSONString(buf, line.Tag)
	buf.WriteString(`","message":"`)
	appendJSONString(buf, line.Text)
	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
