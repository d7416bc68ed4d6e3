// Package logger is the public API of the facade. Most users only need to
// import this package.
//
// Every call checks the level first. Suppressed calls return after one
// atomic load: no caller lookup, no formatting, and deferred producers
// are never invoked.
//
//	logger.DebugFunc(func() string { return expensiveDump() })
//
// Output is off until configured. The quickest setup is Initialize:
//
//	logger.Initialize(debug, verbose)
//
// With debug set this writes everything to stdout, with caller and
// thread prefixes when verbose is set. Without debug it suppresses
// everything. SetInitializer picks where the lines are written:
//
//	logger.SetInitializer(logger.SingleThreadInitializer())
//
// Tags default to the short name of the calling type or package,
// truncated to 23 characters, and fall back to "tag". Multi-line messages and
// error traces are split so each line reaches the sink on its own.
//
// For an independent instance, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithSink(sink.NewDirect(emitter.NewConsole(emitter.ConsoleConfig{}))).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// Wrappers that add frames of their own use LogDepth so the caller and
// inferred tag still point at their user.
package logger
