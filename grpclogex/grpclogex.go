// Package grpclogex routes gRPC's internal logging through a logex
// logger, so grpc log lines carry the same call-site templates as the
// rest of the process.
package grpclogex

import (
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc/grpclog"

	"github.com/slaterama/logex"
)

// Logger implements grpclog.LoggerV2 over a logex logger. Every record
// is tagged "grpc".
type Logger struct {
	log  *logex.Logger
	exit func(int)
}

var _ grpclog.LoggerV2 = (*Logger)(nil)

// New returns a Logger writing through l. A nil l selects the package
// default logger.
func New(l *logex.Logger) *Logger {
	if l == nil {
		l = logex.Default()
	}
	return &Logger{log: l, exit: os.Exit}
}

// Register installs the adapter as the process-wide gRPC logger.
//
// It must only be called during initialization, before any gRPC
// traffic.
func Register(l *logex.Logger) {
	grpclog.SetLoggerV2(New(l))
}

func (g *Logger) entry() *logex.Entry {
	return g.log.WithTag("grpc")
}

// sprintln renders println-style arguments without the trailing
// newline fmt.Sprintln appends.
func sprintln(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func (g *Logger) Info(args ...interface{}) {
	g.entry().Info(fmt.Sprint(args...))
}

func (g *Logger) Infoln(args ...interface{}) {
	g.entry().Info(sprintln(args))
}

func (g *Logger) Infof(format string, args ...interface{}) {
	g.entry().Info(fmt.Sprintf(format, args...))
}

func (g *Logger) Warning(args ...interface{}) {
	g.entry().Warn(fmt.Sprint(args...))
}

func (g *Logger) Warningln(args ...interface{}) {
	g.entry().Warn(sprintln(args))
}

func (g *Logger) Warningf(format string, args ...interface{}) {
	g.entry().Warn(fmt.Sprintf(format, args...))
}

func (g *Logger) Error(args ...interface{}) {
	g.entry().Error(fmt.Sprint(args...))
}

func (g *Logger) Errorln(args ...interface{}) {
	g.entry().Error(sprintln(args))
}

func (g *Logger) Errorf(format string, args ...interface{}) {
	g.entry().Error(fmt.Sprintf(format, args...))
}

// Fatal logs at the Assert level and terminates the process, as the
// grpclog contract requires.
func (g *Logger) Fatal(args ...interface{}) {
	g.entry().Assert(fmt.Sprint(args...))
	g.exit(1)
}

func (g *Logger) Fatalln(args ...interface{}) {
	g.entry().Assert(sprintln(args))
	g.exit(1)
}

func (g *Logger) Fatalf(format string, args ...interface{}) {
	g.entry().Assert(fmt.Sprintf(format, args...))
	g.exit(1)
}

// V reports whether verbosity level l is enabled. gRPC verbosity grows
// with l, with 0 corresponding to Info, so each step down from Info
// raises the requirement until Verbose.
func (g *Logger) V(l int) bool {
	level := logex.LevelInfo - logex.Level(l)
	if level < logex.LevelVerbose {
		level = logex.LevelVerbose
	}
	return g.log.IsLoggable(level)
}
