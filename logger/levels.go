package logger

import (
	"fmt"

	"github.com/philipp01105/facade/core"
)

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string) {
	l.log(methodSkip, core.VerboseLevel, "", msg, nil, nil)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.VerboseLevel) {
		return
	}
	l.log(methodSkip, core.VerboseLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// VerboseErr logs an error at verbose level
func (l *Logger) VerboseErr(err error) {
	l.log(methodSkip, core.VerboseLevel, "", "", nil, err)
}

// VerboseMsgErr logs a verbose message followed by err
func (l *Logger) VerboseMsgErr(msg string, err error) {
	l.log(methodSkip, core.VerboseLevel, "", msg, nil, err)
}

// VerboseTag logs a verbose message with an explicit tag
func (l *Logger) VerboseTag(tag, msg string) {
	l.log(methodSkip, core.VerboseLevel, tag, msg, nil, nil)
}

// VerboseTagErr logs a verbose message and err with an explicit tag
func (l *Logger) VerboseTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.VerboseLevel, tag, msg, nil, err)
}

// VerboseFunc logs the result of produce, called only when verbose is enabled
func (l *Logger) VerboseFunc(produce func() string) {
	l.log(methodSkip, core.VerboseLevel, "", "", produce, nil)
}

// VerboseFuncErr logs the result of produce and err, produce is called only when verbose is enabled
func (l *Logger) VerboseFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.VerboseLevel, "", "", produce, err)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.log(methodSkip, core.DebugLevel, "", msg, nil, nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.DebugLevel) {
		return
	}
	l.log(methodSkip, core.DebugLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// DebugErr logs an error at debug level
func (l *Logger) DebugErr(err error) {
	l.log(methodSkip, core.DebugLevel, "", "", nil, err)
}

// DebugMsgErr logs a debug message followed by err
func (l *Logger) DebugMsgErr(msg string, err error) {
	l.log(methodSkip, core.DebugLevel, "", msg, nil, err)
}

// DebugTag logs a debug message with an explicit tag
func (l *Logger) DebugTag(tag, msg string) {
	l.log(methodSkip, core.DebugLevel, tag, msg, nil, nil)
}

// DebugTagErr logs a debug message and err with an explicit tag
func (l *Logger) DebugTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.DebugLevel, tag, msg, nil, err)
}

// DebugFunc logs the result of produce, called only when debug is enabled
func (l *Logger) DebugFunc(produce func() string) {
	l.log(methodSkip, core.DebugLevel, "", "", produce, nil)
}

// DebugFuncErr logs the result of produce and err, produce is called only when debug is enabled
func (l *Logger) DebugFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.DebugLevel, "", "", produce, err)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.log(methodSkip, core.InfoLevel, "", msg, nil, nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.InfoLevel) {
		return
	}
	l.log(methodSkip, core.InfoLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// InfoErr logs an error at info level
func (l *Logger) InfoErr(err error) {
	l.log(methodSkip, core.InfoLevel, "", "", nil, err)
}

// InfoMsgErr logs an info message followed by err
func (l *Logger) InfoMsgErr(msg string, err error) {
	l.log(methodSkip, core.InfoLevel, "", msg, nil, err)
}

// InfoTag logs an info message with an explicit tag
func (l *Logger) InfoTag(tag, msg string) {
	l.log(methodSkip, core.InfoLevel, tag, msg, nil, nil)
}

// InfoTagErr logs an info message and err with an explicit tag
func (l *Logger) InfoTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.InfoLevel, tag, msg, nil, err)
}

// InfoFunc logs the result of produce, called only when info is enabled
func (l *Logger) InfoFunc(produce func() string) {
	l.log(methodSkip, core.InfoLevel, "", "", produce, nil)
}

// InfoFuncErr logs the result of produce and err, produce is called only when info is enabled
func (l *Logger) InfoFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.InfoLevel, "", "", produce, err)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.log(methodSkip, core.WarnLevel, "", msg, nil, nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.WarnLevel) {
		return
	}
	l.log(methodSkip, core.WarnLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// WarnErr logs an error at warning level
func (l *Logger) WarnErr(err error) {
	l.log(methodSkip, core.WarnLevel, "", "", nil, err)
}

// WarnMsgErr logs a warning message followed by err
func (l *Logger) WarnMsgErr(msg string, err error) {
	l.log(methodSkip, core.WarnLevel, "", msg, nil, err)
}

// WarnTag logs a warning message with an explicit tag
func (l *Logger) WarnTag(tag, msg string) {
	l.log(methodSkip, core.WarnLevel, tag, msg, nil, nil)
}

// WarnTagErr logs a warning message and err with an explicit tag
func (l *Logger) WarnTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.WarnLevel, tag, msg, nil, err)
}

// WarnFunc logs the result of produce, called only when warning is enabled
func (l *Logger) WarnFunc(produce func() string) {
	l.log(methodSkip, core.WarnLevel, "", "", produce, nil)
}

// WarnFuncErr logs the result of produce and err, produce is called only when warning is enabled
func (l *Logger) WarnFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.WarnLevel, "", "", produce, err)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.log(methodSkip, core.ErrorLevel, "", msg, nil, nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.ErrorLevel) {
		return
	}
	l.log(methodSkip, core.ErrorLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// ErrorErr logs an error at error level
func (l *Logger) ErrorErr(err error) {
	l.log(methodSkip, core.ErrorLevel, "", "", nil, err)
}

// ErrorMsgErr logs an error message followed by err
func (l *Logger) ErrorMsgErr(msg string, err error) {
	l.log(methodSkip, core.ErrorLevel, "", msg, nil, err)
}

// ErrorTag logs an error message with an explicit tag
func (l *Logger) ErrorTag(tag, msg string) {
	l.log(methodSkip, core.ErrorLevel, tag, msg, nil, nil)
}

// ErrorTagErr logs an error message and err with an explicit tag
func (l *Logger) ErrorTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.ErrorLevel, tag, msg, nil, err)
}

// ErrorFunc logs the result of produce, called only when error is enabled
func (l *Logger) ErrorFunc(produce func() string) {
	l.log(methodSkip, core.ErrorLevel, "", "", produce, nil)
}

// ErrorFuncErr logs the result of produce and err, produce is called only when error is enabled
func (l *Logger) ErrorFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.ErrorLevel, "", "", produce, err)
}

// Assert logs an assert message
func (l *Logger) Assert(msg string) {
	l.log(methodSkip, core.AssertLevel, "", msg, nil, nil)
}

// Assertf logs an assert message with formatting
func (l *Logger) Assertf(format string, args ...interface{}) {
	if !l.cfg.threshold.Enabled(core.AssertLevel) {
		return
	}
	l.log(methodSkip, core.AssertLevel, "", fmt.Sprintf(format, args...), nil, nil)
}

// AssertErr logs an error at assert level
func (l *Logger) AssertErr(err error) {
	l.log(methodSkip, core.AssertLevel, "", "", nil, err)
}

// AssertMsgErr logs an assert message followed by err
func (l *Logger) AssertMsgErr(msg string, err error) {
	l.log(methodSkip, core.AssertLevel, "", msg, nil, err)
}

// AssertTag logs an assert message with an explicit tag
func (l *Logger) AssertTag(tag, msg string) {
	l.log(methodSkip, core.AssertLevel, tag, msg, nil, nil)
}

// AssertTagErr logs an assert message and err with an explicit tag
func (l *Logger) AssertTagErr(tag, msg string, err error) {
	l.log(methodSkip, core.AssertLevel, tag, msg, nil, err)
}

// AssertFunc logs the result of produce, called only when assert is enabled
func (l *Logger) AssertFunc(produce func() string) {
	l.log(methodSkip, core.AssertLevel, "", "", produce, nil)
}

// AssertFuncErr logs the result of produce and err, produce is called only when assert is enabled
func (l *Logger) AssertFuncErr(produce func() string, err error) {
	l.log(methodSkip, core.AssertLevel, "", "", produce, err)
}
