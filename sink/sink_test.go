package sink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
)

func TestDirect_EmitsOnCaller(t *testing.T) {
	rec := &recorder{}
	s := NewDirect(rec)
	s.DeliverLines(core.DebugLevel, "t", []string{"a", "b"})
	s.Deliver(core.DebugLevel, "t", "c")

	got := rec.emissions()
	require.Len(t, got, 3)
	for i, want := range []string{"a", "b", "c"} {
		require.Equal(t, want, got[i].line)
		require.Equal(t, core.GoroutineID(), got[i].goroutine)
	}
}

func TestDirect_ErrorHandler(t *testing.T) {
	errWrite := errors.New("write failed")
	var errs []error
	s := NewDirect(emitter.Func(func(core.Level, string, string) error {
		return errWrite
	}), WithErrorHandler(func(err error) { errs = append(errs, err) }))

	s.Deliver(core.InfoLevel, "t", "x")
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errWrite)
}

func TestDirect_RecoversEmitterPanic(t *testing.T) {
	var errs []error
	panicking := emitter.Func(func(core.Level, string, string) error { panic("boom") })

	require.NotPanics(t, func() {
		NewDirect(panicking).Deliver(core.InfoLevel, "t", "x")
	})
	NewDirect(panicking, WithErrorHandler(func(err error) { errs = append(errs, err) })).
		Deliver(core.InfoLevel, "t", "x")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "boom")
}

func TestMulti_FanOut(t *testing.T) {
	var plain []string
	a := Func(func(_ core.Level, _, line string) { plain = append(plain, line) })
	rec := &recorder{}
	b := NewDirect(rec)

	m := Multi(a, Nop(), nil, b)
	m.DeliverLines(core.InfoLevel, "t", []string{"1", "2"})
	m.Deliver(core.InfoLevel, "t", "3")

	require.Equal(t, []string{"1", "2", "3"}, plain)
	require.Len(t, rec.emissions(), 3)
}

func TestNop(t *testing.T) {
	require.True(t, IsNop(Nop()))
	require.False(t, IsNop(Func(func(core.Level, string, string) {})))
	require.NotPanics(t, func() { Nop().Deliver(core.AssertLevel, "t", "x") })
}
