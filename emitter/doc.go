// Package emitter provides raw line emitters: the destinations that finally
// write a formatted line somewhere.
//
// An emitter receives one line at a time, already split and decorated by
// the logger. Console writes through a formatter to an io.Writer, SlogEmitter
// hands lines to any slog.Handler, and the zapemitter, zeroemitter and
// logrusemitter subpackages forward to the respective logging libraries.
// Multi fans out to several emitters and aggregates their errors.
//
// Quick start:
//
//	e := emitter.NewConsole(emitter.ConsoleConfig{Writer: os.Stderr})
//	s := sink.NewDirect(e)
package emitter
