package looper

import "github.com/philipp01105/facade/core"

// Executor runs a task on some goroutine. Implementations decide whether
// the task runs inline or is handed off, and never block the caller beyond
// their overflow policy.
type Executor interface {
	Execute(level core.Level, task func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(level core.Level, task func())

// Execute calls f.
func (f ExecutorFunc) Execute(level core.Level, task func()) {
	f(level, task)
}

type inline struct{}

func (inline) Execute(_ core.Level, task func()) { task() }

// Inline runs every task on the calling goroutine.
var Inline Executor = inline{}

type mainExecutor struct {
	l *Looper
}

// MainExecutor runs tasks inline when the caller is already on l's loop
// goroutine and posts them to l otherwise. Posting never waits: a full
// queue drops the task even when l's policy for the level is Block.
func MainExecutor(l *Looper) Executor {
	return mainExecutor{l: l}
}

func (m mainExecutor) Execute(level core.Level, task func()) {
	if m.l.IsCurrent() {
		task()
		return
	}
	m.l.TryPost(level, task)
}
