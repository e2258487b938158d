package objectutil_test

import (
	"testing"

	"github.com/slaterama/logex/objectutil"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name   string
		a, b   interface{}
		expect bool
	}{
		{"both nil", nil, nil, true},
		{"left nil", nil, "x", false},
		{"right nil", "x", nil, false},
		{"equal strings", "x", "x", true},
		{"unequal ints", 1, 2, false},
		{"mismatched types", 1, "1", false},
		{"uncomparable", []int{1}, []int{1}, false},
	}
	for _, tt := range tests {
		if got := objectutil.Equal(tt.a, tt.b); got != tt.expect {
			t.Errorf("%s: expect %v, but got %v", tt.name, tt.expect, got)
		}
	}
}

func TestDeepEqual(t *testing.T) {
	if !objectutil.DeepEqual([]int{1, 2}, []int{1, 2}) {
		t.Error("expect equal slices to be deeply equal")
	}
	if objectutil.DeepEqual([]int{1}, nil) {
		t.Error("expect a slice and nil not to be deeply equal")
	}
	if !objectutil.DeepEqual(nil, nil) {
		t.Error("expect two nils to be deeply equal")
	}
}

func TestHash(t *testing.T) {
	if objectutil.Hash(nil) != 0 {
		t.Error("expect nil to hash to zero")
	}
	if objectutil.Hash("x") != objectutil.Hash("x") {
		t.Error("expect equal values to hash equally")
	}
	if objectutil.Hash("x") == objectutil.Hash("y") {
		t.Error("expect distinct values to hash distinctly")
	}
}

func TestString(t *testing.T) {
	if got := objectutil.String(nil); got != "nil" {
		t.Errorf("expect %q, but got %q", "nil", got)
	}
	if got := objectutil.String(42); got != "42" {
		t.Errorf("expect %q, but got %q", "42", got)
	}
	if got := objectutil.StringOr(nil, "-"); got != "-" {
		t.Errorf("expect %q, but got %q", "-", got)
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	if !objectutil.IsNil(nil) {
		t.Error("expect nil to be nil")
	}
	if !objectutil.IsNil(p) {
		t.Error("expect a nil pointer inside an interface to be nil")
	}
	if !objectutil.IsNil(m) {
		t.Error("expect a nil map to be nil")
	}
	if objectutil.IsNil(0) {
		t.Error("expect a zero int not to be nil")
	}
	if objectutil.IsNil(new(int)) {
		t.Error("expect a non-nil pointer not to be nil")
	}
}

func TestNonNil(t *testing.T) {
	var p *int
	if got := objectutil.NonNil(p, "fallback"); got != "fallback" {
		t.Errorf("expect the fallback, but got %v", got)
	}
	if got := objectutil.NonNil("v", "fallback"); got != "v" {
		t.Errorf("expect the value, but got %v", got)
	}
}

func TestRequireNonNil(t *testing.T) {
	if _, err := objectutil.RequireNonNil(nil, "sink"); err == nil {
		t.Error("expect an error for nil")
	}
	v, err := objectutil.RequireNonNil("x", "sink")
	if err != nil {
		t.Fatal(err)
	}
	if v != "x" {
		t.Errorf("expect %q, but got %v", "x", v)
	}
}
