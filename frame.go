package logex

import (
	"fmt"
	"hash/fnv"
	"runtime"

	"github.com/pkg/errors"
)

// maxStackDepth bounds the cost of a synthesized capture.
const maxStackDepth = 32

// Frame is a single entry in a captured call stack. Function carries the
// full runtime symbol ("pkg/path.(*Type).Method.func1") from which the
// name placeholders are resolved.
type Frame struct {
	File     string
	Line     int
	Function string

	pc uintptr
}

// Stack is an ordered sequence of frames, innermost first.
type Stack []Frame

// hash is a stable identity for the frame, exposed through the HashCode
// placeholder.
func (f Frame) hash() uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d", f.Function, f.File, f.Line)
	return h.Sum32()
}

// logPackage is the import path of this package, resolved at init so the
// synthesized-capture path can recognise its own frames. It plays the role
// of the marker type the original facility compared class names against.
var logPackage = func() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	sym, ok := parseSymbol(fn.Name())
	if !ok {
		return ""
	}
	return sym.pkgPath
}()

// captureStack captures the current goroutine's stack, skipping
// captureStack itself plus `skip` additional frames.
func captureStack(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	st := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		st = append(st, Frame{File: fr.File, Line: fr.Line, Function: fr.Function, pc: fr.PC})
		if !more {
			break
		}
	}
	return st
}

// internal reports whether the frame belongs to this package. Subpackages
// (sink adapters and the like) are deliberately not internal; when they
// call the facade they are the caller being reported.
func (f Frame) internal() bool {
	if logPackage == "" {
		return false
	}
	prefix := logPackage + "."
	return len(f.Function) > len(prefix) && f.Function[:len(prefix)] == prefix
}

// locate selects the call-site frame from a captured stack.
//
// A synthesized stack exists purely so its frames can be read, which means
// the leading entries are always this package's own bookkeeping; they are
// skipped until the first external frame. A stack taken from a
// caller-supplied error is different: it already records where something
// went wrong, so frame zero is returned untouched even if it points back
// into this package.
func locate(st Stack, synthesized bool) Frame {
	if len(st) == 0 {
		return Frame{}
	}
	if !synthesized {
		return st[0]
	}
	for _, fr := range st {
		if !fr.internal() {
			return fr
		}
	}
	// Pathological all-internal stack; the outermost frame is the least
	// wrong answer.
	return st[len(st)-1]
}

// stackTracer is the stack carrier contract of github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// errorStack extracts the stack carried by err or any error it wraps.
func errorStack(err error) (Stack, bool) {
	for err != nil {
		if tr, ok := err.(stackTracer); ok {
			return convertTrace(tr.StackTrace()), true
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}

// convertTrace maps pkg/errors program counters onto Frames.
func convertTrace(trace errors.StackTrace) Stack {
	st := make(Stack, 0, len(trace))
	for _, f := range trace {
		// The stored counter points past the call instruction.
		pc := uintptr(f) - 1
		fr := Frame{pc: pc}
		if fn := runtime.FuncForPC(pc); fn != nil {
			fr.Function = fn.Name()
			fr.File, fr.Line = fn.FileLine(pc)
		}
		st = append(st, fr)
	}
	return st
}
