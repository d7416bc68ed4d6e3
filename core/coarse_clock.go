package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// coarseInterval is how often the cached clock is refreshed.
const coarseInterval = time.Millisecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches time.Now()
// every millisecond, the resolution of the console timestamp layout. It is
// safe to call multiple times; the goroutine is started exactly once and
// runs for the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time, or time.Now() if the
// coarse clock has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
