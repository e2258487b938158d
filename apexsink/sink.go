// Package apexsink forwards formatted records to an apex/log handler
// chain.
package apexsink

import (
	apex "github.com/apex/log"

	"github.com/slaterama/logex"
)

// Sink hands each record to an apex/log entry. Apex entries have no tag
// of their own, so the tag travels as a field.
type Sink struct {
	log apex.Interface
}

// New returns a Sink logging through l. A nil l selects the apex
// process logger.
func New(l apex.Interface) *Sink {
	if l == nil {
		l = apex.Log
	}
	return &Sink{log: l}
}

// Print implements logex.Sink. Verbose collapses into apex's Debug;
// Assert into Error.
func (s *Sink) Print(level logex.Level, tag, msg string) (int, error) {
	e := s.log.WithField("tag", tag)
	switch {
	case level >= logex.LevelError:
		e.Error(msg)
	case level == logex.LevelWarn:
		e.Warn(msg)
	case level == logex.LevelInfo:
		e.Info(msg)
	default:
		e.Debug(msg)
	}
	return len(msg), nil
}
