// Package looper provides goroutine-affine task execution.
//
// A Looper is a bounded, ordered task queue drained by whichever goroutine
// calls Loop. Go has no addressable main thread, so the application binds
// the main looper explicitly:
//
//	go func() { _ = looper.Main().Loop(ctx) }() // or call it from main
//
// Executors decide where a task runs:
//
//   - Inline runs the task on the caller.
//   - MainExecutor runs inline on the loop goroutine and posts otherwise.
//   - Worker always posts to its own lazily started goroutine.
//
// # Ordering
//
// Tasks submitted by one goroutine run in submission order. A MainExecutor
// running a task inline on the loop goroutine may overtake tasks that other
// goroutines posted earlier; only per-goroutine order is guaranteed.
//
// # Overflow
//
// Queues are bounded. When full, the per-level OverflowPolicy decides
// between dropping the new task, dropping the oldest queued task, or
// blocking for BlockTimeout before dropping. Tasks are never run on the
// submitting goroutine as a fallback. Drops are counted in Stats.
// Every level drops the new task by default; Block is opt-in, and the main
// executor never waits regardless of policy.
//
// A Looper runs once. After Quit or context cancellation it drains what was
// accepted, and later posts are dropped and counted.
package looper
