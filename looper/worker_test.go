package looper

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/facade/core"
)

func TestInline_RunsOnCaller(t *testing.T) {
	self := core.GoroutineID()
	var got uint64
	Inline.Execute(core.InfoLevel, func() { got = core.GoroutineID() })
	require.Equal(t, self, got)
}

func TestMainExecutor_InlineOnLoopPostedOtherwise(t *testing.T) {
	l := New(Config{Name: "main-test"})
	startLoop(t, l)
	exec := MainExecutor(l)

	var (
		loopID     atomic.Uint64
		nestedSame atomic.Bool
		offThread  atomic.Uint64
	)
	l.Post(core.InfoLevel, func() {
		loopID.Store(core.GoroutineID())
		ran := false
		exec.Execute(core.InfoLevel, func() { ran = true })
		// Inline execution means the task already ran.
		nestedSame.Store(ran)
	})
	exec.Execute(core.InfoLevel, func() { offThread.Store(core.GoroutineID()) })
	require.NoError(t, l.Flush(context.Background()))

	require.True(t, nestedSame.Load())
	require.Equal(t, loopID.Load(), offThread.Load())
	require.NotEqual(t, core.GoroutineID(), offThread.Load())
}

func TestWorker_AlwaysPosts(t *testing.T) {
	w := NewWorker(Config{})
	defer w.Close(context.Background())

	var (
		workerID  atomic.Uint64
		nestedRan atomic.Bool
		ranBefore atomic.Bool
	)
	w.Execute(core.InfoLevel, func() {
		workerID.Store(core.GoroutineID())
		w.Execute(core.InfoLevel, func() { nestedRan.Store(true) })
		// Posted, not run inline.
		ranBefore.Store(nestedRan.Load())
	})
	require.NoError(t, w.Flush(context.Background()))
	require.NoError(t, w.Flush(context.Background()))

	require.True(t, nestedRan.Load())
	require.False(t, ranBefore.Load())
	require.NotEqual(t, core.GoroutineID(), workerID.Load())
}

func TestWorker_PerGoroutineOrder(t *testing.T) {
	const (
		goroutines = 8
		perG       = 100
	)
	w := NewWorker(Config{BufferSize: goroutines * perG})
	defer w.Close(context.Background())

	var (
		mu   sync.Mutex
		seen = make(map[int][]int)
		ids  = make(map[uint64]struct{})
	)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				i := i
				w.Execute(core.InfoLevel, func() {
					mu.Lock()
					seen[g] = append(seen[g], i)
					ids[core.GoroutineID()] = struct{}{}
					mu.Unlock()
				})
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, w.Flush(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, ids, 1)
	for g := 0; g < goroutines; g++ {
		require.Len(t, seen[g], perG)
		for i, v := range seen[g] {
			require.Equal(t, i, v)
		}
	}
}

func TestWorker_ThreadInfo(t *testing.T) {
	w := NewWorker(Config{Name: "logging", Group: "logging"})
	defer w.Close(context.Background())

	infoc := make(chan core.ThreadInfo, 1)
	w.Execute(core.InfoLevel, func() { infoc <- core.CurrentThreadInfo() })
	select {
	case info := <-infoc:
		require.Equal(t, "logging", info.Name)
		require.Equal(t, core.NormPriority, info.Priority)
		require.Equal(t, "logging", info.Group)
	case <-time.After(time.Second):
		t.Fatal("worker task did not run")
	}
}

func TestWorker_CloseDrains(t *testing.T) {
	w := NewWorker(Config{})
	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		w.Execute(core.InfoLevel, func() { ran.Add(1) })
	}
	require.NoError(t, w.Close(context.Background()))
	require.Equal(t, int32(10), ran.Load())
}

func TestDefaultWorker_Singleton(t *testing.T) {
	require.Same(t, DefaultWorker(), DefaultWorker())
	require.Same(t, Main(), Main())
	require.Equal(t, "main", Main().Name())
}
