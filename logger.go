package logex

import (
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Logger holds the formatter's process state: severity threshold, the
// tag and message templates, locale, sink and tag filter. A single lock
// guards all of it, so a dispatch in flight never observes configuration
// from two generations - a deliberate strengthening of the original
// best-effort behaviour.
type Logger struct {
	mu        sync.RWMutex
	threshold Level
	tagTmpl   template
	msgTmpl   template
	printer   *message.Printer
	sink      Sink
	filter    TagFilter
}

// New returns a Logger with the default configuration: threshold Info,
// tag template rendering the simple declaring name, message template
// rendering "method(file:line) message", the system locale, and the
// environment tag filter. A nil sink selects the stderr line sink.
func New(sink Sink) *Logger {
	if sink == nil {
		sink = NewLineSink(os.Stderr)
	}
	return &Logger{
		threshold: LevelInfo,
		tagTmpl: template{
			format: "%s",
			args:   []Arg{Symbol(SimpleClassName)},
		},
		msgTmpl: template{
			format: "%s(%s:%d) %s",
			args:   []Arg{Symbol(MethodName), Symbol(FileName), Symbol(LineNumber), Symbol(Message)},
		},
		printer: message.NewPrinter(systemLocale()),
		sink:    sink,
		filter:  NewEnvTagFilter(),
	}
}

// SetThreshold sets the logger's severity threshold.
func (l *Logger) SetThreshold(level Level) {
	l.mu.Lock()
	l.threshold = level
	l.mu.Unlock()
}

// Threshold returns the logger's current severity threshold.
func (l *Logger) Threshold() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold
}

// IsLoggable reports whether level clears the threshold. The default
// threshold is Info, so Info and above are loggable. The logging
// functions do not perform this check themselves; callers wanting to
// avoid the formatting cost should check before calling them.
func (l *Logger) IsLoggable(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.threshold
}

// IsLoggableTag reports whether the configured TagFilter allows records
// for the given tag at the given level. Not to be confused with
// IsLoggable: the two gates are independent.
func (l *Logger) IsLoggableTag(tag string, level Level) bool {
	l.mu.RLock()
	filter := l.filter
	l.mu.RUnlock()
	return filter.IsLoggable(tag, level)
}

// SetTagFormat sets the format and arguments used to generate tags in
// future logging calls. Arguments created with Symbol are replaced with
// the appropriate value when the record is logged; if there are more
// arguments than the format requires, the extras are ignored.
func (l *Logger) SetTagFormat(format string, args ...Arg) error {
	t := template{format: format, args: args}
	if err := t.validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.tagTmpl = t
	l.mu.Unlock()
	return nil
}

// SetMessageFormat sets the format and arguments used to generate
// messages in future logging calls, under the same contract as
// SetTagFormat.
func (l *Logger) SetMessageFormat(format string, args ...Arg) error {
	t := template{format: format, args: args}
	if err := t.validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.msgTmpl = t
	l.mu.Unlock()
	return nil
}

// SetLocale switches the locale used for number and text substitution.
func (l *Logger) SetLocale(tag language.Tag) {
	l.mu.Lock()
	l.printer = message.NewPrinter(tag)
	l.mu.Unlock()
}

// SetSink replaces the sink receiving formatted records.
func (l *Logger) SetSink(sink Sink) {
	if sink == nil {
		sink = NewLineSink(os.Stderr)
	}
	l.mu.Lock()
	l.sink = sink
	l.mu.Unlock()
}

// SetTagFilter replaces the platform tag filter queried by IsLoggableTag.
func (l *Logger) SetTagFilter(filter TagFilter) {
	if filter == nil {
		filter = NewEnvTagFilter()
	}
	l.mu.Lock()
	l.filter = filter
	l.mu.Unlock()
}

// snapshot copies the formatting state under one read lock.
func (l *Logger) snapshot() (template, template, *message.Printer, Sink) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tagTmpl, l.msgTmpl, l.printer, l.sink
}
