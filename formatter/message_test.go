package formatter

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/facade/core"
)

// tracedError carries the program counters of where it was created.
type tracedError struct {
	msg string
	pcs []uintptr
}

func newTracedError(msg string) *tracedError {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(1, pcs)
	return &tracedError{msg: msg, pcs: pcs[:n]}
}

func (e *tracedError) Error() string         { return e.msg }
func (e *tracedError) StackTrace() []uintptr { return e.pcs }

func TestMessage_Composition(t *testing.T) {
	err := errors.New("boom")

	require.Equal(t, "", Message("", nil, nil))
	require.Equal(t, TraceOf(err), Message("", nil, err))
	require.Equal(t, "m\n"+TraceOf(err), Message("m", nil, err))
	require.Equal(t, "m", Message("m", nil, nil))
}

func TestMessage_ProducerCalledOnce(t *testing.T) {
	calls := 0
	produce := func() string {
		calls++
		return "produced"
	}

	require.Equal(t, "produced", Message("ignored", produce, nil))
	require.Equal(t, 1, calls)
}

func TestTraceOf_CauseChain(t *testing.T) {
	root := errors.New("disk full")
	wrapped := fmt.Errorf("write segment: %w", root)

	trace := TraceOf(wrapped)
	lines := strings.Split(trace, "\n")

	require.Equal(t, []string{
		"*fmt.wrapError: write segment: disk full",
		"Caused by: *errors.errorString: disk full",
	}, lines)
}

func TestTraceOf_Joined(t *testing.T) {
	joined := errors.Join(errors.New("a"), nil, errors.New("b"))

	trace := TraceOf(joined)
	require.Contains(t, trace, "Caused by: *errors.errorString: a")
	require.Contains(t, trace, "Caused by: *errors.errorString: b")
	require.False(t, strings.HasSuffix(trace, "\n"))
}

func TestTraceOf_StackFrames(t *testing.T) {
	err := newTracedError("traced")

	trace := TraceOf(err)
	require.True(t, strings.HasPrefix(trace, "*formatter.tracedError: traced\n"), trace)
	require.Contains(t, trace, "\tgithub.com/philipp01105/facade/formatter.TestTraceOf_StackFrames\n\t\t")
	require.Contains(t, trace, "message_test.go:")
	require.NotContains(t, trace, "runtime.goexit")
}

func TestTraceOf_Nil(t *testing.T) {
	require.Equal(t, "", TraceOf(nil))
}

func TestThreadPrefix(t *testing.T) {
	require.Equal(t, "[main,5,system] ", ThreadPrefix(core.ThreadInfo{Name: "main", Priority: 5, Group: "system"}))
	require.Equal(t, "[goroutine-7,0] ", ThreadPrefix(core.ThreadInfo{Name: "goroutine-7"}))
}

func TestDecorate_Order(t *testing.T) {
	thread := &core.ThreadInfo{Name: "logging", Priority: 5}

	require.Equal(t, "msg", Decorate("msg", "", nil))
	require.Equal(t, "pkg.fn(f.go:1) : msg", Decorate("msg", "pkg.fn(f.go:1)", nil))
	require.Equal(t, "[logging,5] msg", Decorate("msg", "", thread))
	require.Equal(t, "[logging,5] pkg.fn(f.go:1) : msg", Decorate("msg", "pkg.fn(f.go:1)", thread))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"single", []string{"single"}},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SplitLines(tt.in), "SplitLines(%q)", tt.in)
	}
}
