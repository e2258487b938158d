// Package objectutil provides nil-safe helpers for comparing and
// describing arbitrary values.
package objectutil

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"github.com/pkg/errors"
)

// Equal reports whether a and b are equal, treating two nils as equal.
// Values that are not comparable with == report false rather than
// panicking.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// DeepEqual reports whether a and b are deeply equal, treating two
// nils as equal.
func DeepEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a 32-bit hash of v's default string rendering. A nil v
// hashes to zero.
func Hash(v interface{}) uint32 {
	if IsNil(v) {
		return 0
	}
	h := fnv.New32a()
	fmt.Fprintf(h, "%v", v)
	return h.Sum32()
}

// String renders v with its default format. A nil v renders as "nil".
func String(v interface{}) string {
	return StringOr(v, "nil")
}

// StringOr renders v with its default format, or returns def when v is
// nil.
func StringOr(v interface{}, def string) string {
	if IsNil(v) {
		return def
	}
	return fmt.Sprintf("%v", v)
}

// IsNil reports whether v is nil, including a non-nil interface
// wrapping a nil pointer, map, slice, channel, or function.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// NonNil returns v unless it is nil, in which case it returns def.
func NonNil(v, def interface{}) interface{} {
	if IsNil(v) {
		return def
	}
	return v
}

// RequireNonNil returns v, or an error naming what was missing when v
// is nil.
func RequireNonNil(v interface{}, what string) (interface{}, error) {
	if IsNil(v) {
		return nil, errors.Errorf("objectutil: %s must not be nil", what)
	}
	return v, nil
}
