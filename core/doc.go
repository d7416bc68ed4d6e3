// Package core defines the shared building blocks of the facade.
//
// It provides the Level type and the Registry that holds the current
// severity threshold. The threshold is a single atomic word, so the
// level check on the hot path is one load and one comparison, and a
// reconfiguration from another goroutine can never be observed half
// written.
//
// ResolveCaller inspects the call stack at a caller-supplied depth and
// returns a CallerInfo, from which the short tag (the simple name of
// the declaring type, at most MaxTagLength characters) and the source
// position are derived. When the stack is shallower than the requested
// depth the CallerInfo is not Defined and its tag is DefaultTag.
//
// Goroutines have no names or priorities in Go. SetThreadInfo lets a
// long-lived goroutine (a looper, a worker) register a ThreadInfo that
// the thread decoration prints; unregistered goroutines are reported
// as "goroutine-<id>".
package core
