package logex

import (
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity
type Level int

const (
	// LevelVerbose displays everything; it should never survive past
	// development builds
	LevelVerbose Level = iota
	// LevelDebug displays debugging output
	LevelDebug
	// LevelInfo displays informational output (the default threshold)
	LevelInfo
	// LevelWarn draws attention above a certain threshold
	// e.g. wrong credentials, upstream node down
	LevelWarn
	// LevelError needs immediate attention
	LevelError
	// LevelAssert reports conditions that should never happen
	LevelAssert
)

var levelNames = [...]string{
	"VERBOSE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"ASSERT",
}

// String returns a string representation of the given level
func (l Level) String() string {
	if l >= LevelVerbose && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// letter is the single-character form used by the default line sink.
func (l Level) letter() string {
	if l >= LevelVerbose && int(l) < len(levelNames) {
		return levelNames[l][:1]
	}
	return "?"
}

// ParseLevel parses a string representation of a log level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE":
		return LevelVerbose, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "ASSERT":
		return LevelAssert, nil
	}
	return LevelInfo, errors.Errorf("unknown level %q", s)
}
