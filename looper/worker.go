package looper

import (
	"context"
	"sync"

	"github.com/philipp01105/facade/core"
)

// Worker owns a dedicated goroutine running a Looper. The goroutine is
// started on first use. Every task is posted, including tasks submitted
// from the worker goroutine itself.
type Worker struct {
	looper    *Looper
	startOnce sync.Once
	done      chan struct{}
	err       error
}

// NewWorker creates a worker. cfg.Name defaults to "logging".
func NewWorker(cfg Config) *Worker {
	if cfg.Name == "" {
		cfg.Name = "logging"
	}
	return &Worker{
		looper: New(cfg),
		done:   make(chan struct{}),
	}
}

func (w *Worker) start() {
	w.startOnce.Do(func() {
		go func() {
			defer close(w.done)
			w.err = w.looper.Loop(context.Background())
		}()
	})
}

// Execute posts task to the worker goroutine.
func (w *Worker) Execute(level core.Level, task func()) {
	w.start()
	w.looper.Post(level, task)
}

// IsCurrent reports whether the caller is the worker goroutine.
func (w *Worker) IsCurrent() bool {
	return w.looper.IsCurrent()
}

// Flush waits until every task submitted before the call has run.
func (w *Worker) Flush(ctx context.Context) error {
	w.start()
	return w.looper.Flush(ctx)
}

// Stats returns a snapshot of the worker's queue statistics.
func (w *Worker) Stats() Snapshot {
	return w.looper.Stats()
}

// Close stops the worker after draining queued tasks and waits for the
// goroutine to exit or ctx to be done.
func (w *Worker) Close(ctx context.Context) error {
	w.start()
	w.looper.Quit()
	select {
	case <-w.done:
		return w.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

var (
	defaultWorker     *Worker
	defaultWorkerOnce sync.Once
)

// DefaultWorker returns the process-wide logging worker.
func DefaultWorker() *Worker {
	defaultWorkerOnce.Do(func() {
		defaultWorker = NewWorker(Config{Name: "logging", Group: "logging"})
	})
	return defaultWorker
}
