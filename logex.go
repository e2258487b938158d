package logex

import (
	"fmt"

	"golang.org/x/text/language"
)

// std is the process-wide logger behind the package-level functions.
var std = New(nil)

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

// Verbose logs a verbose message through the logger.
func (l *Logger) Verbose(msg string) (int, error) { return l.dispatch(LevelVerbose, "", msg, nil) }

// Debug logs a debug message through the logger.
func (l *Logger) Debug(msg string) (int, error) { return l.dispatch(LevelDebug, "", msg, nil) }

// Info logs an informational message through the logger.
func (l *Logger) Info(msg string) (int, error) { return l.dispatch(LevelInfo, "", msg, nil) }

// Warn logs a warning message through the logger.
func (l *Logger) Warn(msg string) (int, error) { return l.dispatch(LevelWarn, "", msg, nil) }

// Error logs an error message through the logger.
func (l *Logger) Error(msg string) (int, error) { return l.dispatch(LevelError, "", msg, nil) }

// Assert logs a message for a condition that should never happen.
func (l *Logger) Assert(msg string) (int, error) { return l.dispatch(LevelAssert, "", msg, nil) }

// WithTag returns an Entry that logs with the given tag.
func (l *Logger) WithTag(tag string) *Entry {
	return &Entry{logger: l, tag: tag}
}

// WithError returns an Entry that attaches err to the record. When err
// carries a stack (github.com/pkg/errors and friends), the call site is
// resolved from that stack instead of the current one.
func (l *Logger) WithError(err error) *Entry {
	return &Entry{logger: l, err: err}
}

// Entry carries an optional tag and error for a single record. The zero
// tag and nil error are simply absent; an Entry funnels into the same
// dispatch primitive as the plain logging functions.
type Entry struct {
	logger *Logger
	tag    string
	err    error
}

// WithTag returns a copy of the entry carrying the given tag.
func (e *Entry) WithTag(tag string) *Entry {
	return &Entry{logger: e.logger, tag: tag, err: e.err}
}

// WithError returns a copy of the entry carrying the given error.
func (e *Entry) WithError(err error) *Entry {
	return &Entry{logger: e.logger, tag: e.tag, err: err}
}

// Verbose logs a verbose message with the entry's tag and error.
func (e *Entry) Verbose(msg string) (int, error) {
	return e.logger.dispatch(LevelVerbose, e.tag, msg, e.err)
}

// Debug logs a debug message with the entry's tag and error.
func (e *Entry) Debug(msg string) (int, error) {
	return e.logger.dispatch(LevelDebug, e.tag, msg, e.err)
}

// Info logs an informational message with the entry's tag and error.
func (e *Entry) Info(msg string) (int, error) {
	return e.logger.dispatch(LevelInfo, e.tag, msg, e.err)
}

// Warn logs a warning message with the entry's tag and error.
func (e *Entry) Warn(msg string) (int, error) {
	return e.logger.dispatch(LevelWarn, e.tag, msg, e.err)
}

// Error logs an error message with the entry's tag and error.
func (e *Entry) Error(msg string) (int, error) {
	return e.logger.dispatch(LevelError, e.tag, msg, e.err)
}

// Assert logs a message for a condition that should never happen.
func (e *Entry) Assert(msg string) (int, error) {
	return e.logger.dispatch(LevelAssert, e.tag, msg, e.err)
}

// dispatch is the single funnel every logging call ends in: pick a stack
// source, locate the call-site frame, render the tag and message
// templates independently, and hand the record to the sink.
//
// No gating happens here. That is a contract, not an oversight: the
// threshold and tag gates are advisory and callers consult them before
// paying for a dispatch.
func (l *Logger) dispatch(level Level, tag, msg string, err error) (int, error) {
	tagTmpl, msgTmpl, printer, sink := l.snapshot()

	var frame Frame
	if err != nil {
		if st, ok := errorStack(err); ok {
			frame = locate(st, false)
		} else {
			// The error brought no stack of its own; capture one here
			// and filter it like any synthesized stack.
			frame = locate(captureStack(1), true)
		}
		msg = msg + "\n" + fmt.Sprintf("%+v", err)
	} else {
		frame = locate(captureStack(1), true)
	}

	// The tag template's Message placeholder resolves to the raw tag,
	// mirroring how the message template sees the raw message.
	formattedTag, rerr := tagTmpl.render(printer, frame, tag)
	if rerr != nil {
		return 0, rerr
	}
	formattedMsg, rerr := msgTmpl.render(printer, frame, msg)
	if rerr != nil {
		return 0, rerr
	}
	return sink.Print(level, formattedTag, formattedMsg)
}

// SetThreshold sets the process-wide severity threshold.
func SetThreshold(level Level) { std.SetThreshold(level) }

// Threshold returns the process-wide severity threshold.
func Threshold() Level { return std.Threshold() }

// IsLoggable reports whether level clears the process-wide threshold.
func IsLoggable(level Level) bool { return std.IsLoggable(level) }

// IsLoggableTag reports whether the platform tag filter allows the given
// tag at the given level.
func IsLoggableTag(tag string, level Level) bool { return std.IsLoggableTag(tag, level) }

// SetTagFormat sets the process-wide tag template.
func SetTagFormat(format string, args ...Arg) error { return std.SetTagFormat(format, args...) }

// SetMessageFormat sets the process-wide message template.
func SetMessageFormat(format string, args ...Arg) error { return std.SetMessageFormat(format, args...) }

// SetLocale switches the process-wide substitution locale.
func SetLocale(tag language.Tag) { std.SetLocale(tag) }

// SetSink replaces the process-wide sink.
func SetSink(sink Sink) { std.SetSink(sink) }

// SetTagFilter replaces the process-wide platform tag filter.
func SetTagFilter(filter TagFilter) { std.SetTagFilter(filter) }

// Verbose logs a verbose message through the process-wide logger.
func Verbose(msg string) (int, error) { return std.dispatch(LevelVerbose, "", msg, nil) }

// Debug logs a debug message through the process-wide logger.
func Debug(msg string) (int, error) { return std.dispatch(LevelDebug, "", msg, nil) }

// Info logs an informational message through the process-wide logger.
func Info(msg string) (int, error) { return std.dispatch(LevelInfo, "", msg, nil) }

// Warn logs a warning message through the process-wide logger.
func Warn(msg string) (int, error) { return std.dispatch(LevelWarn, "", msg, nil) }

// Error logs an error message through the process-wide logger.
func Error(msg string) (int, error) { return std.dispatch(LevelError, "", msg, nil) }

// Assert logs a message for a condition that should never happen.
func Assert(msg string) (int, error) { return std.dispatch(LevelAssert, "", msg, nil) }

// WithTag returns an Entry on the process-wide logger with the given tag.
func WithTag(tag string) *Entry { return std.WithTag(tag) }

// WithError returns an Entry on the process-wide logger carrying err.
func WithError(err error) *Entry { return std.WithError(err) }
