package looper

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/facade/core"
)

var (
	// ErrQuit is returned when operating on a looper that has quit.
	ErrQuit = errors.New("looper: quit")
	// ErrRunning is returned by Loop when another goroutine already runs it.
	ErrRunning = errors.New("looper: already running")
	// ErrFlushTimeout indicates Loop returned before the queue was drained.
	ErrFlushTimeout = errors.New("looper: drain timeout")
)

// Config holds configuration for a looper
type Config struct {
	// Name is registered as the thread name of the loop goroutine (default: "looper")
	Name string
	// Priority is registered as the thread priority (default: core.NormPriority)
	Priority int
	// Group is registered as the thread group (default: none)
	Group string
	// BufferSize is the size of the task queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout bounds the drain of remaining tasks when the loop stops (default: 5s)
	DrainTimeout time.Duration
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "looper"
	}
	if cfg.Priority == 0 {
		cfg.Priority = core.NormPriority
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

type task struct {
	level   core.Level
	run     func()
	barrier bool
}

// Looper is an ordered task queue bound to the goroutine that runs Loop.
// Tasks run one at a time in the order they were accepted. A looper runs
// once: after Loop returns it accepts no more tasks.
type Looper struct {
	cfg      Config
	queue    chan task
	stats    *Stats
	owner    atomic.Uint64
	running  atomic.Bool
	closed   atomic.Bool
	inflight atomic.Int64 // sends between the closed check and the queue
	quit     chan struct{}
	quitOnce sync.Once
	stopped  chan struct{}
	stopOnce sync.Once
}

// New creates a looper. Nothing runs until a goroutine calls Loop.
func New(cfg Config) *Looper {
	applyDefaults(&cfg)
	return &Looper{
		cfg:     cfg,
		queue:   make(chan task, cfg.BufferSize),
		stats:   NewStats(),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Name returns the thread name registered by Loop.
func (l *Looper) Name() string {
	return l.cfg.Name
}

// Loop binds the calling goroutine to the looper and runs tasks until ctx
// is done or Quit is called. Either way the looper then quits and drains
// the remaining tasks, bounded by the drain timeout. Loop returns nil
// after Quit, ctx.Err() after cancellation, and ErrFlushTimeout if tasks
// were left behind. Calling Loop on a stopped looper returns ErrQuit.
func (l *Looper) Loop(ctx context.Context) error {
	select {
	case <-l.stopped:
		return ErrQuit
	default:
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer l.running.Store(false)

	l.owner.Store(core.GoroutineID())
	defer l.owner.Store(0)
	core.SetThreadInfo(core.ThreadInfo{Name: l.cfg.Name, Priority: l.cfg.Priority, Group: l.cfg.Group})
	defer core.ClearThreadInfo()

	var result error
	for result == nil {
		// Quit wins over queued tasks; those are handled by the drain.
		select {
		case <-l.quit:
			result = ErrQuit
			continue
		default:
		}
		select {
		case t := <-l.queue:
			l.run(t)
			// Batch drain: process additional queued tasks without blocking
		batchDrain:
			for !l.closed.Load() {
				select {
				case t := <-l.queue:
					l.run(t)
				default:
					break batchDrain
				}
			}
		case <-ctx.Done():
			result = ctx.Err()
			l.Quit()
		case <-l.quit:
			result = ErrQuit
		}
	}

	drained := l.drain()
	l.stopOnce.Do(func() { close(l.stopped) })
	if !drained {
		return ErrFlushTimeout
	}
	if result == ErrQuit {
		return nil
	}
	return result
}

// drain runs queued tasks until no sender is in flight and the queue is
// empty, or the drain timeout expires. Tasks left after the timeout are
// counted as dropped. It reports whether everything ran.
func (l *Looper) drain() bool {
	deadline := time.Now().Add(l.cfg.DrainTimeout)
	for {
		idle := l.inflight.Load() == 0 && len(l.queue) == 0
		if idle {
			return true
		}
		if time.Now().After(deadline) {
			l.discard()
			return false
		}
		select {
		case t := <-l.queue:
			l.run(t)
		default:
			runtime.Gosched()
		}
	}
}

// discard empties the queue without running tasks. Barriers are skipped so
// their waiters observe the stop instead of a completed flush.
func (l *Looper) discard() {
	for {
		select {
		case t := <-l.queue:
			if !t.barrier {
				l.stats.IncrementDropped(t.level)
			}
		default:
			return
		}
	}
}

// run executes one task; a panicking task is counted and does not stop the loop.
func (l *Looper) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.IncrementFailed()
		}
	}()
	t.run()
	if !t.barrier {
		l.stats.IncrementProcessed()
	}
}

// IsCurrent reports whether the calling goroutine is running Loop.
func (l *Looper) IsCurrent() bool {
	owner := l.owner.Load()
	return owner != 0 && owner == core.GoroutineID()
}

// Post enqueues fn for the loop goroutine and returns without waiting.
// When the queue is full the level's overflow policy applies. Post reports
// whether the task was accepted.
func (l *Looper) Post(level core.Level, fn func()) bool {
	return l.post(level, fn, true)
}

// TryPost is Post without waiting: a Block policy behaves like DropNewest.
func (l *Looper) TryPost(level core.Level, fn func()) bool {
	return l.post(level, fn, false)
}

func (l *Looper) post(level core.Level, fn func(), mayBlock bool) bool {
	l.inflight.Add(1)
	defer l.inflight.Add(-1)
	if l.closed.Load() {
		l.stats.IncrementDropped(level)
		return false
	}

	t := task{level: level, run: fn}

	policy, ok := l.cfg.OverflowPolicy[level]
	if !ok {
		policy = DropNewest // Default if not specified
	}
	if policy == Block && !mayBlock {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case l.queue <- t:
			return true
		default:
		}
		timer := time.NewTimer(l.cfg.BlockTimeout)
		defer timer.Stop()
		select {
		case l.queue <- t:
			return true
		case <-timer.C:
			l.stats.IncrementBlocked()
			l.stats.IncrementDropped(level)
			return false
		case <-l.stopped:
			l.stats.IncrementDropped(level)
			return false
		}

	case DropOldest:
		select {
		case l.queue <- t:
			return true
		default:
		}
		select {
		case old := <-l.queue:
			if old.barrier {
				// Everything queued before the barrier is gone; release the waiter.
				old.run()
			} else {
				l.stats.IncrementDropped(old.level)
			}
		default:
		}
		select {
		case l.queue <- t:
			return true
		default:
			l.stats.IncrementDropped(level)
			return false
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case l.queue <- t:
			return true
		default:
			l.stats.IncrementDropped(level)
			return false
		}
	}
}

// Flush waits until every task accepted before the call has been handled.
// It returns immediately when called from the loop goroutine itself, and
// ErrQuit once the looper has stopped.
func (l *Looper) Flush(ctx context.Context) error {
	if l.IsCurrent() {
		return nil
	}
	done := make(chan struct{})
	barrier := task{run: func() { close(done) }, barrier: true}

	if err := l.sendBarrier(ctx, barrier); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-l.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrQuit
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Looper) sendBarrier(ctx context.Context, barrier task) error {
	l.inflight.Add(1)
	defer l.inflight.Add(-1)
	if l.closed.Load() {
		return ErrQuit
	}
	select {
	case l.queue <- barrier:
		return nil
	case <-l.stopped:
		return ErrQuit
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Quit stops the loop after draining. It is safe to call more than once.
func (l *Looper) Quit() {
	l.closed.Store(true)
	l.quitOnce.Do(func() { close(l.quit) })
}

// Done is closed once Loop has drained and returned.
func (l *Looper) Done() <-chan struct{} {
	return l.stopped
}

// Stats returns a snapshot of the current statistics
func (l *Looper) Stats() Snapshot {
	return l.stats.GetSnapshot()
}

// Pending returns the number of queued tasks.
func (l *Looper) Pending() int {
	return len(l.queue)
}

var (
	mainLooper     *Looper
	mainLooperOnce sync.Once
)

// Main returns the process-wide main looper. The application binds it by
// calling Main().Loop(ctx) from its main goroutine.
func Main() *Looper {
	mainLooperOnce.Do(func() {
		mainLooper = New(Config{Name: "main", Group: "main"})
	})
	return mainLooper
}
