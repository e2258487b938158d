package logex

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Sink is the external component that ultimately writes a formatted
// record somewhere. It reports the number of bytes written; a short
// write is observable only through that count.
type Sink interface {
	Print(level Level, tag, msg string) (int, error)
}

// NewLineSink returns a Sink writing logcat-style "I/Tag: message" lines
// to out.
func NewLineSink(out io.Writer) Sink {
	return &lineSink{out: out}
}

type lineSink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *lineSink) Print(level Level, tag, msg string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Fprintf(s.out, "%s/%s: %s\n", level.letter(), tag, msg)
}

// TagFilter is the platform's own per-tag gate. It is configured
// independently of the threshold gate and neither implies the other;
// the formatter only ever queries it.
type TagFilter interface {
	IsLoggable(tag string, level Level) bool
}

// NewEnvTagFilter returns a TagFilter backed by process environment
// properties of the form LOG_TAG_<TAG>=<LEVEL>. An unset tag is loggable
// at Info and above; the special level SUPPRESS turns a tag off entirely.
func NewEnvTagFilter() TagFilter {
	return envTagFilter{}
}

type envTagFilter struct{}

func (envTagFilter) IsLoggable(tag string, level Level) bool {
	v := os.Getenv("LOG_TAG_" + tag)
	if v == "" {
		return level >= LevelInfo
	}
	if strings.EqualFold(strings.TrimSpace(v), "SUPPRESS") {
		return false
	}
	min, err := ParseLevel(v)
	if err != nil {
		return level >= LevelInfo
	}
	return level >= min
}
