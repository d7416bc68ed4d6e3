package core

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	// MaxTagLength is the longest tag handed to a sink; longer names are cut.
	MaxTagLength = 23
	// DefaultTag is used when no tag is given and no caller frame is available.
	DefaultTag = "tag"
)

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// ResolveCaller returns the frame skip levels above the function that calls
// ResolveCaller, using the runtime.Caller convention: skip 0 is the calling
// function itself. Frames are logical, so inlined calls count as frames.
// When the stack is shallower than that, the returned CallerInfo is not
// Defined.
func ResolveCaller(skip int) CallerInfo {
	if skip < 0 {
		return CallerInfo{}
	}
	// One frame for ResolveCaller itself, skip frames above it, and the target.
	want := skip + 2
	var buf [32]uintptr
	pcs := buf[:]
	if want > len(pcs) {
		pcs = make([]uintptr, want)
	}
	// Skip only runtime.Callers; everything above is walked logically.
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return CallerInfo{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; ; i++ {
		frame, more := frames.Next()
		if i == skip+1 {
			if frame.PC == 0 {
				return CallerInfo{}
			}
			return CallerInfo{
				File:      frame.File,
				ShortFile: filepath.Base(frame.File),
				Line:      frame.Line,
				Function:  frame.Function,
				Defined:   true,
			}
		}
		if !more {
			return CallerInfo{}
		}
	}
}

// Tag returns the short identifier of the caller, bounded to MaxTagLength,
// or DefaultTag when the frame is unavailable.
func (c CallerInfo) Tag() string {
	if !c.Defined {
		return DefaultTag
	}
	name := ShortName(c.Function)
	if name == "" {
		return DefaultTag
	}
	return TruncateTag(name)
}

// Position renders the frame as "pkg.(*Type).method(file.go:42)".
func (c CallerInfo) Position() string {
	if !c.Defined {
		return ""
	}
	fn := c.Function
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	var b strings.Builder
	b.Grow(len(fn) + len(c.ShortFile) + 8)
	b.WriteString(fn)
	b.WriteByte('(')
	b.WriteString(c.ShortFile)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(c.Line))
	b.WriteByte(')')
	return b.String()
}

// TruncateTag cuts tag to MaxTagLength characters, never splitting one.
func TruncateTag(tag string) string {
	if len(tag) <= MaxTagLength {
		return tag
	}
	runes := 0
	for i := range tag {
		if runes == MaxTagLength {
			return tag[:i]
		}
		runes++
	}
	return tag
}

// ShortName derives the simple name of the type that declares function,
// given a fully qualified runtime function name.
//
//	github.com/acme/app/server.(*Server).run.func1 -> Server
//	github.com/acme/app/server.Handler.ServeHTTP   -> Handler
//	github.com/acme/app/server.listen.func2        -> server
//
// Plain functions have no enclosing type, so the package name stands in.
func ShortName(function string) string {
	name := function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = stripTypeParams(name)

	pkg, rest, ok := strings.Cut(name, ".")
	if !ok {
		return name
	}
	first, after, more := strings.Cut(rest, ".")

	if strings.HasPrefix(first, "(*") {
		return strings.TrimSuffix(first[2:], ")")
	}
	if more {
		next, _, _ := strings.Cut(after, ".")
		if !isClosureName(next) {
			return first
		}
	}
	return pkg
}

// isClosureName reports whether a name component was generated by the
// compiler for a closure, wrapper, or numbered init function.
func isClosureName(s string) bool {
	for _, prefix := range [...]string{"func", "gowrap", "deferwrap"} {
		if digits, ok := strings.CutPrefix(s, prefix); ok && isDigits(digits) {
			return true
		}
	}
	return isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// stripTypeParams removes instantiation brackets such as "[...]".
func stripTypeParams(s string) string {
	if strings.IndexByte(s, '[') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteByte(c)
		}
	}
	return b.String()
}
