package sink

import (
	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
	"github.com/philipp01105/facade/looper"
)

// Affine hands every emission to an executor, so the emitter only ever runs
// where the executor decides.
type Affine struct {
	exec    looper.Executor
	emitter emitter.Emitter
	onError func(error)
}

// NewAffine creates a sink emitting through e on exec.
func NewAffine(exec looper.Executor, e emitter.Emitter, opts ...Option) *Affine {
	o := buildOptions(opts)
	return &Affine{exec: exec, emitter: e, onError: o.onError}
}

// NewMainThread creates a sink emitting on the goroutine running l.Loop.
// Calls made on that goroutine emit inline; all others are posted.
func NewMainThread(l *looper.Looper, e emitter.Emitter, opts ...Option) *Affine {
	return NewAffine(looper.MainExecutor(l), e, opts...)
}

// NewSingleThread creates a sink emitting on the shared logging worker.
func NewSingleThread(e emitter.Emitter, opts ...Option) *Affine {
	return NewAffine(looper.DefaultWorker(), e, opts...)
}

// Deliver submits one emission.
func (a *Affine) Deliver(level core.Level, tag, line string) {
	a.exec.Execute(level, func() {
		emit(a.emitter, a.onError, level, tag, line)
	})
}

// DeliverLines submits one task emitting all lines in order.
func (a *Affine) DeliverLines(level core.Level, tag string, lines []string) {
	a.exec.Execute(level, func() {
		for _, line := range lines {
			emit(a.emitter, a.onError, level, tag, line)
		}
	})
}
