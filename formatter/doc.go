// Package formatter turns log requests into text.
//
// Message composition happens in two steps. Message combines the literal
// message (or the output of a deferred producer) with the trace of an
// error; Decorate then prepends the caller position and thread info when
// those decorations are enabled. The dispatcher splits the result with
// SplitLines so line-oriented destinations receive one record per line.
//
// TraceOf renders an error as a block: its dynamic type and message, the
// origin frames when the error exposes StackTrace() []uintptr, and each
// wrapped cause on its own "Caused by:" line, following both Unwrap() error
// and Unwrap() []error.
//
// The line printers (TextFormatter and JSONFormatter) render a single Line
// for emitters that write to an io.Writer. Both implement Formatter,
// WriterFormatter, and BufferFormatter and use a pooled bytes.Buffer
// internally; buffers larger than 64 KiB are not returned to the pool.
package formatter
