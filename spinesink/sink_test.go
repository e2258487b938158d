package spinesink_test

import (
	"testing"

	spinelog "github.com/deixis/spine/log"

	"github.com/slaterama/logex"
	"github.com/slaterama/logex/spinesink"
)

type record struct {
	severity string
	tag      string
	msg      string
}

// recordLogger captures spine log calls.
type recordLogger struct {
	records []record
}

func (l *recordLogger) Trace(tag, msg string, fields ...spinelog.Field) {
	l.records = append(l.records, record{"trace", tag, msg})
}

func (l *recordLogger) Warning(tag, msg string, fields ...spinelog.Field) {
	l.records = append(l.records, record{"warning", tag, msg})
}

func (l *recordLogger) Error(tag, msg string, fields ...spinelog.Field) {
	l.records = append(l.records, record{"error", tag, msg})
}

func (l *recordLogger) With(fields ...spinelog.Field) spinelog.Logger { return l }
func (l *recordLogger) AddCalldepth(n int) spinelog.Logger            { return l }
func (l *recordLogger) Close() error                                  { return nil }

func TestPrintForwardsRecord(t *testing.T) {
	rec := &recordLogger{}
	sink := spinesink.New(rec)

	n, err := sink.Print(logex.LevelWarn, "Sync", "pull failed")
	if err != nil {
		t.Fatal(err)
	}
	if n != len("pull failed") {
		t.Errorf("expect %d bytes, but got %d", len("pull failed"), n)
	}
	if len(rec.records) != 1 {
		t.Fatalf("expect one record, but got %d", len(rec.records))
	}
	expect := record{"warning", "Sync", "pull failed"}
	if rec.records[0] != expect {
		t.Errorf("expect %v, but got %v", expect, rec.records[0])
	}
}

func TestPrintSeverityMapping(t *testing.T) {
	tests := []struct {
		level  logex.Level
		expect string
	}{
		{logex.LevelVerbose, "trace"},
		{logex.LevelDebug, "trace"},
		{logex.LevelInfo, "trace"},
		{logex.LevelWarn, "warning"},
		{logex.LevelError, "error"},
		{logex.LevelAssert, "error"},
	}
	for _, tt := range tests {
		rec := &recordLogger{}
		if _, err := spinesink.New(rec).Print(tt.level, "T", "m"); err != nil {
			t.Fatal(err)
		}
		if len(rec.records) != 1 {
			t.Fatalf("%s: expect one record, but got %d", tt.level, len(rec.records))
		}
		if rec.records[0].severity != tt.expect {
			t.Errorf("%s: expect %s, but got %s", tt.level, tt.expect, rec.records[0].severity)
		}
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	n, err := spinesink.New(nil).Print(logex.LevelInfo, "T", "m")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expect 1 byte, but got %d", n)
	}
}
