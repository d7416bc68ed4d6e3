package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
	"github.com/philipp01105/facade/formatter"
	"github.com/philipp01105/facade/sink"
)

type delivery struct {
	level core.Level
	tag   string
	line  string
}

// recordingSink collects deliveries. It does not implement BatchSink, so
// the logger delivers line by line.
type recordingSink struct {
	mu  sync.Mutex
	got []delivery
}

func (r *recordingSink) Deliver(level core.Level, tag, line string) {
	r.mu.Lock()
	r.got = append(r.got, delivery{level: level, tag: tag, line: line})
	r.mu.Unlock()
}

func (r *recordingSink) deliveries() []delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]delivery(nil), r.got...)
}

func newRecorded(level core.Level) (*Logger, *recordingSink) {
	rec := &recordingSink{}
	return NewBuilder().WithSink(rec).WithLevel(level).Build(), rec
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	e := emitter.NewConsole(emitter.ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{OmitTimestamp: true}),
	})

	logger := NewBuilder().
		WithSink(sink.NewDirect(e)).
		WithLevel(InfoLevel).
		Build()

	// Debug should not be logged (below Info level)
	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	// Info should be logged
	logger.InfoTag("Gate", "info message")
	if got := buf.String(); got != "I [Gate] info message\n" {
		t.Errorf("unexpected output: %q", got)
	}

	buf.Reset()

	logger.WarnTag("Gate", "warn message")
	if !strings.Contains(buf.String(), "W [Gate] warn message") {
		t.Errorf("Expected warn line in output, got: %s", buf.String())
	}
}

func TestLogger_ProducerNotCalledWhenSuppressed(t *testing.T) {
	log, rec := newRecorded(WarnLevel)

	calls := 0
	produce := func() string {
		calls++
		return "expensive"
	}

	log.DebugFunc(produce)
	log.InfoFuncErr(produce, errors.New("ignored"))
	log.VerboseFunc(produce)
	require.Zero(t, calls)
	require.Empty(t, rec.deliveries())

	log.WarnFunc(produce)
	require.Equal(t, 1, calls)
	require.Equal(t, "expensive", rec.deliveries()[0].line)
}

func TestLogger_SuppressedByDefault(t *testing.T) {
	log := New(nil)
	require.Equal(t, SuppressLevel, log.Config().Level())
	require.False(t, log.Enabled(AssertLevel))
	require.True(t, sink.IsNop(log.Config().Sink()))

	calls := 0
	log.AssertFunc(func() string { calls++; return "" })
	require.Zero(t, calls)
}

func TestLogger_MultiLineFanOut(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)

	log.InfoTag("Fan", "first\nsecond\nthird\n")

	got := rec.deliveries()
	require.Len(t, got, 3)
	for i, want := range []string{"first", "second", "third"} {
		require.Equal(t, delivery{level: InfoLevel, tag: "Fan", line: want}, got[i])
	}
}

func TestLogger_EmptyMessageStillDelivers(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)
	log.DebugTag("T", "")
	require.Equal(t, []delivery{{level: DebugLevel, tag: "T", line: ""}}, rec.deliveries())
}

func TestLogger_ErrorTraceLines(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)

	cause := errors.New("disk full")
	err := &wrapErr{msg: "save failed", cause: cause}
	log.ErrorTagErr("Store", "could not save", err)

	got := rec.deliveries()
	require.Len(t, got, 3)
	require.Equal(t, "could not save", got[0].line)
	require.Equal(t, "*logger.wrapErr: save failed", got[1].line)
	require.Equal(t, "Caused by: *errors.errorString: disk full", got[2].line)
	for _, d := range got {
		require.Equal(t, ErrorLevel, d.level)
		require.Equal(t, "Store", d.tag)
	}
}

type wrapErr struct {
	msg   string
	cause error
}

func (e *wrapErr) Error() string { return e.msg }
func (e *wrapErr) Unwrap() error { return e.cause }

func TestLogger_ErrOnly(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)
	log.WarnErr(errors.New("boom"))
	got := rec.deliveries()
	require.Len(t, got, 1)
	require.Equal(t, "*errors.errorString: boom", got[0].line)
}

func TestLogger_Formatted(t *testing.T) {
	log, rec := newRecorded(InfoLevel)
	log.Infof("port=%d", 8080)
	log.Debugf("hidden %d", 1)
	got := rec.deliveries()
	require.Len(t, got, 1)
	require.Equal(t, "port=8080", got[0].line)
}

func TestLogger_ThresholdChange(t *testing.T) {
	log, rec := newRecorded(ErrorLevel)

	log.WarnTag("T", "before")
	log.Config().SetLevel(WarnLevel)
	log.WarnTag("T", "after")
	log.Config().SetLevel(SuppressLevel)
	log.AssertTag("T", "suppressed")

	got := rec.deliveries()
	require.Len(t, got, 1)
	require.Equal(t, "after", got[0].line)
}

func TestLogger_EndToEndWarnThreshold(t *testing.T) {
	log, rec := newRecorded(WarnLevel)

	log.VerboseTag("E2E", "v")
	log.DebugTag("E2E", "d")
	log.InfoTag("E2E", "i")
	log.WarnTag("E2E", "w")
	log.ErrorTag("E2E", "e")

	require.Equal(t, []delivery{
		{level: WarnLevel, tag: "E2E", line: "w"},
		{level: ErrorLevel, tag: "E2E", line: "e"},
	}, rec.deliveries())
}

func TestLogger_ThreadPrefix(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)
	log.Config().AppendThread(true)

	core.SetThreadInfo(core.ThreadInfo{Name: "worker", Priority: 7, Group: "pool"})
	defer core.ClearThreadInfo()

	log.InfoTag("T", "hello\nworld")
	got := rec.deliveries()
	require.Len(t, got, 2)
	require.Equal(t, "[worker,7,pool] hello", got[0].line)
	require.Equal(t, "world", got[1].line)
}

func TestLogger_BatchSinkGetsOneCall(t *testing.T) {
	var batches [][]string
	var single int
	s := &batchRecorder{
		onBatch:  func(lines []string) { batches = append(batches, lines) },
		onSingle: func() { single++ },
	}
	log := NewBuilder().WithSink(s).WithLevel(VerboseLevel).Build()

	log.InfoTag("T", "a\nb")
	require.Equal(t, [][]string{{"a", "b"}}, batches)
	require.Zero(t, single)
}

type batchRecorder struct {
	onBatch  func([]string)
	onSingle func()
}

func (b *batchRecorder) Deliver(core.Level, string, string) { b.onSingle() }
func (b *batchRecorder) DeliverLines(_ core.Level, _ string, lines []string) {
	b.onBatch(lines)
}

func TestLogger_SinkPanicRecovered(t *testing.T) {
	s := sink.Func(func(core.Level, string, string) { panic("sink broke") })
	log := NewBuilder().WithSink(s).WithLevel(VerboseLevel).Build()

	require.NotPanics(t, func() { log.Error("x") })
	require.Equal(t, uint64(1), log.Dropped())
}

func TestLogger_NilSinkIsNop(t *testing.T) {
	log := NewBuilder().WithLevel(VerboseLevel).Build()
	require.True(t, sink.IsNop(log.Config().Sink()))
	require.NotPanics(t, func() { log.Info("x") })
}

func TestLogger_AllLevelMethods(t *testing.T) {
	log, rec := newRecorded(VerboseLevel)
	err := errors.New("e")
	produce := func() string { return "p" }

	calls := []func(){
		func() { log.Verbose("m") }, func() { log.Verbosef("%s", "m") },
		func() { log.VerboseErr(err) }, func() { log.VerboseMsgErr("m", err) },
		func() { log.VerboseTag("t", "m") }, func() { log.VerboseTagErr("t", "m", err) },
		func() { log.VerboseFunc(produce) }, func() { log.VerboseFuncErr(produce, err) },
		func() { log.Debug("m") }, func() { log.Info("m") }, func() { log.Warn("m") },
		func() { log.Error("m") }, func() { log.Assert("m") },
		func() { log.AssertTagErr("t", "m", err) }, func() { log.ErrorFuncErr(produce, err) },
	}
	for _, call := range calls {
		call()
	}

	levels := make(map[core.Level]int)
	for _, d := range rec.deliveries() {
		levels[d.level]++
	}
	require.Equal(t, 1, levels[DebugLevel])
	require.Equal(t, 1, levels[InfoLevel])
	require.Equal(t, 1, levels[WarnLevel])
	require.Equal(t, 3, levels[ErrorLevel])
	require.Equal(t, 3, levels[AssertLevel])
	// Verbose: 1+1+1+2+1+2+1+2 lines
	require.Equal(t, 11, levels[VerboseLevel])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, WarnLevel, ParseLevel("warning"))
	require.Equal(t, VerboseLevel, ParseLevel("V"))
	require.Equal(t, SuppressLevel, ParseLevel("bogus"))
}

func BenchmarkLogger_Suppressed(b *testing.B) {
	log := New(NewConfig())
	produce := func() string { return "never" }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Debug("suppressed")
		log.DebugFunc(produce)
	}
}

func BenchmarkLogger_InfoDiscard(b *testing.B) {
	log := NewBuilder().
		WithSink(sink.NewDirect(emitter.Discard)).
		WithLevel(InfoLevel).
		Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.InfoTag("Bench", "message")
	}
}

func TestLogger_SuppressedZeroAllocs(t *testing.T) {
	log := New(NewConfig())
	produce := func() string { return "never" }
	allocs := testing.AllocsPerRun(100, func() {
		log.Debug("suppressed")
		log.DebugFunc(produce)
		log.InfoErr(nil)
	})
	require.Zero(t, allocs)
}
