package formatter

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipp01105/facade/core"
)

// maxCauseDepth bounds the cause chain walk; it guards against cyclic Unwrap.
const maxCauseDepth = 32

// stackTracer is implemented by errors that carry the program counters of
// their origin.
type stackTracer interface {
	StackTrace() []uintptr
}

// Message combines a literal message or the result of produce with the
// trace of err. produce, when non-nil, is called exactly once and takes
// precedence over msg. Callers must only invoke Message after the level
// check has passed.
func Message(msg string, produce func() string, err error) string {
	if produce != nil {
		msg = produce()
	}
	if err == nil {
		return msg
	}
	if msg == "" {
		return TraceOf(err)
	}
	return msg + "\n" + TraceOf(err)
}

// TraceOf renders err as a multi-line block: the dynamic type and message,
// the origin frames when the error carries them, and every wrapped cause
// introduced by "Caused by: ". The result has no trailing newline.
func TraceOf(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	writeTrace(&b, err, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeTrace(b *strings.Builder, err error, depth int) {
	if depth >= maxCauseDepth {
		return
	}
	if depth > 0 {
		b.WriteString("Caused by: ")
	}
	b.WriteString(fmt.Sprintf("%T", err))
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteByte('\n')

	if st, ok := err.(stackTracer); ok {
		writeFrames(b, st.StackTrace())
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if next := u.Unwrap(); next != nil {
			writeTrace(b, next, depth+1)
		}
	case interface{ Unwrap() []error }:
		for _, next := range u.Unwrap() {
			if next != nil {
				writeTrace(b, next, depth+1)
			}
		}
	}
}

// writeFrames renders program counters the way Go prints goroutine stacks,
// indented one level below the error header.
func writeFrames(b *strings.Builder, pcs []uintptr) {
	if len(pcs) == 0 {
		return
	}
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && frame.Function != "runtime.goexit" {
			b.WriteByte('\t')
			b.WriteString(frame.Function)
			b.WriteString("\n\t\t")
			b.WriteString(frame.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(frame.Line))
			b.WriteByte('\n')
		}
		if !more {
			return
		}
	}
}

// ThreadPrefix renders "[name,priority,group] ", omitting an empty group.
func ThreadPrefix(info core.ThreadInfo) string {
	var b strings.Builder
	b.Grow(len(info.Name) + len(info.Group) + 8)
	b.WriteByte('[')
	b.WriteString(info.Name)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(info.Priority))
	if info.Group != "" {
		b.WriteByte(',')
		b.WriteString(info.Group)
	}
	b.WriteString("] ")
	return b.String()
}

// CallerPrefix renders the position separator used before the message.
func CallerPrefix(position string) string {
	return position + " : "
}

// Decorate applies the optional caller and thread prefixes to message.
// The caller prefix is applied first and the thread prefix wraps it, so the
// output reads "[thread] position : message". An empty position or a nil
// thread skips the corresponding prefix.
func Decorate(message, position string, thread *core.ThreadInfo) string {
	if position != "" {
		message = CallerPrefix(position) + message
	}
	if thread != nil {
		message = ThreadPrefix(*thread) + message
	}
	return message
}

// SplitLines splits text on newlines for line-oriented destinations. A
// single trailing newline does not produce an extra empty line; the empty
// text yields one empty line.
func SplitLines(text string) []string {
	if strings.IndexByte(text, '\n') < 0 {
		return []string{text}
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
