package logger

import (
	"fmt"

	"github.com/philipp01105/facade/core"
)

// Verbose logs a verbose message using the default logger
func Verbose(msg string) {
	Default().log(packageSkip, core.VerboseLevel, "", msg, nil, nil)
}

// Verbosef logs a verbose message with formatting using the default logger
func Verbosef(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.VerboseLevel) {
		return
	}
	l.log(packageSkip, core.VerboseLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// VerboseErr logs an error at verbose level using the default logger
func VerboseErr(err error) {
	Default().log(packageSkip, core.VerboseLevel, "", "", nil, err)
}

// VerboseMsgErr logs a verbose message followed by err using the default logger
func VerboseMsgErr(msg string, err error) {
	Default().log(packageSkip, core.VerboseLevel, "", msg, nil, err)
}

// VerboseTag logs a verbose message with an explicit tag using the default logger
func VerboseTag(tag, msg string) {
	Default().log(packageSkip, core.VerboseLevel, tag, msg, nil, nil)
}

// VerboseTagErr logs a verbose message and err with an explicit tag using the default logger
func VerboseTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.VerboseLevel, tag, msg, nil, err)
}

// VerboseFunc logs the result of produce, called only when verbose is enabled using the default logger
func VerboseFunc(produce func() string) {
	Default().log(packageSkip, core.VerboseLevel, "", "", produce, nil)
}

// VerboseFuncErr logs the result of produce and err, produce is called only when verbose is enabled using the default logger
func VerboseFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.VerboseLevel, "", "", produce, err)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().log(packageSkip, core.DebugLevel, "", msg, nil, nil)
}

// Debugf logs a debug message with formatting using the default logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.DebugLevel) {
		return
	}
	l.log(packageSkip, core.DebugLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// DebugErr logs an error at debug level using the default logger
func DebugErr(err error) {
	Default().log(packageSkip, core.DebugLevel, "", "", nil, err)
}

// DebugMsgErr logs a debug message followed by err using the default logger
func DebugMsgErr(msg string, err error) {
	Default().log(packageSkip, core.DebugLevel, "", msg, nil, err)
}

// DebugTag logs a debug message with an explicit tag using the default logger
func DebugTag(tag, msg string) {
	Default().log(packageSkip, core.DebugLevel, tag, msg, nil, nil)
}

// DebugTagErr logs a debug message and err with an explicit tag using the default logger
func DebugTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.DebugLevel, tag, msg, nil, err)
}

// DebugFunc logs the result of produce, called only when debug is enabled using the default logger
func DebugFunc(produce func() string) {
	Default().log(packageSkip, core.DebugLevel, "", "", produce, nil)
}

// DebugFuncErr logs the result of produce and err, produce is called only when debug is enabled using the default logger
func DebugFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.DebugLevel, "", "", produce, err)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().log(packageSkip, core.InfoLevel, "", msg, nil, nil)
}

// Infof logs an info message with formatting using the default logger
func Infof(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.InfoLevel) {
		return
	}
	l.log(packageSkip, core.InfoLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// InfoErr logs an error at info level using the default logger
func InfoErr(err error) {
	Default().log(packageSkip, core.InfoLevel, "", "", nil, err)
}

// InfoMsgErr logs an info message followed by err using the default logger
func InfoMsgErr(msg string, err error) {
	Default().log(packageSkip, core.InfoLevel, "", msg, nil, err)
}

// InfoTag logs an info message with an explicit tag using the default logger
func InfoTag(tag, msg string) {
	Default().log(packageSkip, core.InfoLevel, tag, msg, nil, nil)
}

// InfoTagErr logs an info message and err with an explicit tag using the default logger
func InfoTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.InfoLevel, tag, msg, nil, err)
}

// InfoFunc logs the result of produce, called only when info is enabled using the default logger
func InfoFunc(produce func() string) {
	Default().log(packageSkip, core.InfoLevel, "", "", produce, nil)
}

// InfoFuncErr logs the result of produce and err, produce is called only when info is enabled using the default logger
func InfoFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.InfoLevel, "", "", produce, err)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().log(packageSkip, core.WarnLevel, "", msg, nil, nil)
}

// Warnf logs a warning message with formatting using the default logger
func Warnf(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.WarnLevel) {
		return
	}
	l.log(packageSkip, core.WarnLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// WarnErr logs an error at warning level using the default logger
func WarnErr(err error) {
	Default().log(packageSkip, core.WarnLevel, "", "", nil, err)
}

// WarnMsgErr logs a warning message followed by err using the default logger
func WarnMsgErr(msg string, err error) {
	Default().log(packageSkip, core.WarnLevel, "", msg, nil, err)
}

// WarnTag logs a warning message with an explicit tag using the default logger
func WarnTag(tag, msg string) {
	Default().log(packageSkip, core.WarnLevel, tag, msg, nil, nil)
}

// WarnTagErr logs a warning message and err with an explicit tag using the default logger
func WarnTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.WarnLevel, tag, msg, nil, err)
}

// WarnFunc logs the result of produce, called only when warning is enabled using the default logger
func WarnFunc(produce func() string) {
	Default().log(packageSkip, core.WarnLevel, "", "", produce, nil)
}

// WarnFuncErr logs the result of produce and err, produce is called only when warning is enabled using the default logger
func WarnFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.WarnLevel, "", "", produce, err)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().log(packageSkip, core.ErrorLevel, "", msg, nil, nil)
}

// Errorf logs an error message with formatting using the default logger
func Errorf(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.ErrorLevel) {
		return
	}
	l.log(packageSkip, core.ErrorLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// ErrorErr logs an error at error level using the default logger
func ErrorErr(err error) {
	Default().log(packageSkip, core.ErrorLevel, "", "", nil, err)
}

// ErrorMsgErr logs an error message followed by err using the default logger
func ErrorMsgErr(msg string, err error) {
	Default().log(packageSkip, core.ErrorLevel, "", msg, nil, err)
}

// ErrorTag logs an error message with an explicit tag using the default logger
func ErrorTag(tag, msg string) {
	Default().log(packageSkip, core.ErrorLevel, tag, msg, nil, nil)
}

// ErrorTagErr logs an error message and err with an explicit tag using the default logger
func ErrorTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.ErrorLevel, tag, msg, nil, err)
}

// ErrorFunc logs the result of produce, called only when error is enabled using the default logger
func ErrorFunc(produce func() string) {
	Default().log(packageSkip, core.ErrorLevel, "", "", produce, nil)
}

// ErrorFuncErr logs the result of produce and err, produce is called only when error is enabled using the default logger
func ErrorFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.ErrorLevel, "", "", produce, err)
}

// Assert logs an assert message using the default logger
func Assert(msg string) {
	Default().log(packageSkip, core.AssertLevel, "", msg, nil, nil)
}

// Assertf logs an assert message with formatting using the default logger
func Assertf(format string, args ...interface{}) {
	l := Default()
	if !l.cfg.threshold.Enabled(core.AssertLevel) {
		return
	}
	l.log(packageSkip, core.AssertLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// AssertErr logs an error at assert level using the default logger
func AssertErr(err error) {
	Default().log(packageSkip, core.AssertLevel, "", "", nil, err)
}

// AssertMsgErr logs an assert message followed by err using the default logger
func AssertMsgErr(msg string, err error) {
	Default().log(packageSkip, core.AssertLevel, "", msg, nil, err)
}

// AssertTag logs an assert message with an explicit tag using the default logger
func AssertTag(tag, msg string) {
	Default().log(packageSkip, core.AssertLevel, tag, msg, nil, nil)
}

// AssertTagErr logs an assert message and err with an explicit tag using the default logger
func AssertTagErr(tag, msg string, err error) {
	Default().log(packageSkip, core.AssertLevel, tag, msg, nil, err)
}

// AssertFunc logs the result of produce, called only when assert is enabled using the default logger
func AssertFunc(produce func() string) {
	Default().log(packageSkip, core.AssertLevel, "", "", produce, nil)
}

// AssertFuncErr logs the result of produce and err, produce is called only when assert is enabled using the default logger
func AssertFuncErr(produce func() string, err error) {
	Default().log(packageSkip, core.AssertLevel, "", "", produce, err)
}
