package emitter

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/facade/core"
)

// Emitter writes one already formatted line to a destination.
// Implementations must be safe for concurrent use unless documented
// otherwise. The line never contains a newline.
type Emitter interface {
	Emit(level core.Level, tag, line string) error
}

// Closer is implemented by emitters holding resources that need releasing.
type Closer interface {
	Close() error
}

// Func adapts a function to the Emitter interface.
type Func func(level core.Level, tag, line string) error

// Emit calls f.
func (f Func) Emit(level core.Level, tag, line string) error {
	return f(level, tag, line)
}

type discard struct{}

func (discard) Emit(core.Level, string, string) error { return nil }

// Discard drops every line.
var Discard Emitter = discard{}

// MultiEmitter sends every line to several emitters.
type MultiEmitter struct {
	emitters []Emitter
}

// Multi creates an emitter writing to all given emitters in order.
// A failing emitter does not stop delivery to the rest.
func Multi(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit writes the line to every emitter and combines their errors.
func (m *MultiEmitter) Emit(level core.Level, tag, line string) error {
	var err error
	for _, e := range m.emitters {
		err = multierr.Append(err, e.Emit(level, tag, line))
	}
	return err
}

// Close closes every emitter that implements Closer.
func (m *MultiEmitter) Close() error {
	var err error
	for _, e := range m.emitters {
		if c, ok := e.(Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
