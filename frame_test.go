package logex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestLocateSynthesizedSkipsInternalFrames(t *testing.T) {
	external := Frame{Function: "github.com/acme/app.handle", File: "app.go", Line: 10}
	st := Stack{
		{Function: logPackage + ".dispatch", File: "logex.go", Line: 1},
		{Function: logPackage + ".Info", File: "logex.go", Line: 2},
		external,
		{Function: "runtime.main", File: "proc.go", Line: 3},
	}

	got := locate(st, true)
	if got != external {
		t.Errorf("expect to locate %v, but got %v", external, got)
	}
}

func TestLocateExplicitStackIsNotFiltered(t *testing.T) {
	// Frame zero belongs to the logging package itself, yet an explicit
	// stack keeps it: the error already says where it was raised.
	st := Stack{
		{Function: logPackage + ".dispatch", File: "logex.go", Line: 1},
		{Function: "github.com/acme/app.handle", File: "app.go", Line: 10},
	}

	got := locate(st, false)
	if got != st[0] {
		t.Errorf("expect to locate %v, but got %v", st[0], got)
	}
}

func TestLocateAllInternalFallsBackToOutermost(t *testing.T) {
	st := Stack{
		{Function: logPackage + ".dispatch", Line: 1},
		{Function: logPackage + ".Info", Line: 2},
	}

	got := locate(st, true)
	if got != st[len(st)-1] {
		t.Errorf("expect to locate %v, but got %v", st[len(st)-1], got)
	}
}

func TestLocateEmptyStack(t *testing.T) {
	if got := locate(nil, true); got != (Frame{}) {
		t.Errorf("expect zero frame, but got %v", got)
	}
	if got := locate(Stack{}, false); got != (Frame{}) {
		t.Errorf("expect zero frame, but got %v", got)
	}
}

func TestCaptureStackStartsAtCaller(t *testing.T) {
	st := captureStack(0)
	if len(st) == 0 {
		t.Fatal("expect a non-empty stack")
	}
	if !strings.Contains(st[0].Function, "TestCaptureStackStartsAtCaller") {
		t.Errorf("expect innermost frame in this test, but got %q", st[0].Function)
	}
	if st[0].Line <= 0 {
		t.Errorf("expect a positive line number, but got %d", st[0].Line)
	}
}

func TestInternalFrameDetection(t *testing.T) {
	if logPackage == "" {
		t.Fatal("expect logPackage to be resolved")
	}
	in := Frame{Function: logPackage + ".dispatch"}
	if !in.internal() {
		t.Errorf("expect %q to be internal", in.Function)
	}
	// Subpackages are callers, not bookkeeping.
	sub := Frame{Function: logPackage + "/apexsink.(*Sink).Print"}
	if sub.internal() {
		t.Errorf("expect %q to be external", sub.Function)
	}
	out := Frame{Function: "github.com/acme/app.handle"}
	if out.internal() {
		t.Errorf("expect %q to be external", out.Function)
	}
}

func stackCarrier() error {
	return errors.New("boom")
}

func TestErrorStackFromPkgErrors(t *testing.T) {
	st, ok := errorStack(stackCarrier())
	if !ok {
		t.Fatal("expect a stack from a pkg/errors error")
	}
	if len(st) == 0 {
		t.Fatal("expect a non-empty stack")
	}
	if !strings.Contains(st[0].Function, "stackCarrier") {
		t.Errorf("expect innermost frame in stackCarrier, but got %q", st[0].Function)
	}
}

func TestErrorStackWalksWrappedErrors(t *testing.T) {
	err := errors.WithMessage(stackCarrier(), "context")
	st, ok := errorStack(err)
	if !ok {
		t.Fatal("expect a stack from the wrapped error")
	}
	if !strings.Contains(st[0].Function, "stackCarrier") {
		t.Errorf("expect innermost frame in stackCarrier, but got %q", st[0].Function)
	}
}

func TestErrorStackAbsent(t *testing.T) {
	if _, ok := errorStack(fmt.Errorf("plain")); ok {
		t.Error("expect no stack from a plain error")
	}
	if _, ok := errorStack(nil); ok {
		t.Error("expect no stack from nil")
	}
}

func TestFrameHashIsStable(t *testing.T) {
	f := Frame{Function: "github.com/acme/app.handle", File: "app.go", Line: 10}
	if f.hash() != f.hash() {
		t.Error("expect identical frames to hash identically")
	}
	g := f
	g.Line = 11
	if f.hash() == g.hash() {
		t.Error("expect differing frames to hash differently")
	}
}
