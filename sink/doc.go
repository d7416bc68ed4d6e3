// Package sink delivers log lines to emitters, either on the calling
// goroutine or on a goroutine chosen by a looper.Executor.
//
// NewDirect emits synchronously. NewAffine hands every call to an executor;
// NewMainThread targets a looper bound by the application and
// NewSingleThread targets the shared "logging" worker. Affine sinks post
// one task per log call, so the lines of a multi-line message stay
// adjacent.
//
// # Ordering
//
// Affine delivery keeps order per submitting goroutine only. Across
// goroutines, order is the FIFO order of the queue, not wall-clock order.
// A main-thread sink called from the loop goroutine emits inline and can
// overtake lines still queued from other goroutines. A stalled loop delays
// everything behind it, and a full queue drops lines according to the
// looper's overflow policy.
//
// Emitter errors and panics never reach the caller. Install
// WithErrorHandler to observe them.
package sink
