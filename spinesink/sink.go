// Package spinesink forwards formatted records to a spine logger,
// whose log lines carry a tag natively.
package spinesink

import (
	spinelog "github.com/deixis/spine/log"

	"github.com/slaterama/logex"
)

// Sink hands each record to a spine log.Logger.
type Sink struct {
	log spinelog.Logger
}

// New returns a Sink logging through l. A nil l discards records.
func New(l spinelog.Logger) *Sink {
	if l == nil {
		l = spinelog.NopLogger()
	}
	return &Sink{log: l}
}

// Print implements logex.Sink. Spine knows three severities: Error and
// Assert need immediate attention, Warn draws it, and everything below
// traces the execution.
func (s *Sink) Print(level logex.Level, tag, msg string) (int, error) {
	switch {
	case level >= logex.LevelError:
		s.log.Error(tag, msg)
	case level == logex.LevelWarn:
		s.log.Warning(tag, msg)
	default:
		s.log.Trace(tag, msg)
	}
	return len(msg), nil
}
