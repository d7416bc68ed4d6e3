package sink

import (
	"fmt"

	"github.com/philipp01105/facade/core"
	"github.com/philipp01105/facade/emitter"
)

// Direct emits on the calling goroutine.
type Direct struct {
	emitter emitter.Emitter
	onError func(error)
}

// NewDirect creates a sink that emits synchronously through e.
func NewDirect(e emitter.Emitter, opts ...Option) *Direct {
	o := buildOptions(opts)
	return &Direct{emitter: e, onError: o.onError}
}

// Deliver emits one line.
func (d *Direct) Deliver(level core.Level, tag, line string) {
	emit(d.emitter, d.onError, level, tag, line)
}

// DeliverLines emits the lines in order.
func (d *Direct) DeliverLines(level core.Level, tag string, lines []string) {
	for _, line := range lines {
		emit(d.emitter, d.onError, level, tag, line)
	}
}

// emit writes one line and routes any error or panic to onError.
func emit(e emitter.Emitter, onError func(error), level core.Level, tag, line string) {
	defer func() {
		if r := recover(); r != nil && onError != nil {
			onError(fmt.Errorf("sink: emitter panic: %v", r))
		}
	}()
	if err := e.Emit(level, tag, line); err != nil && onError != nil {
		onError(err)
	}
}
