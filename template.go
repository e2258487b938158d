package logex

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Arg is one template argument: either a literal passed through verbatim
// or a placeholder resolved against the call site on every log call.
type Arg struct {
	literal     interface{}
	placeholder Placeholder
	symbolic    bool
}

// Literal wraps a fixed value that is substituted unchanged.
func Literal(v interface{}) Arg {
	return Arg{literal: v}
}

// Symbol marks p for dynamic resolution when the record is formatted.
func Symbol(p Placeholder) Arg {
	return Arg{placeholder: p, symbolic: true}
}

// template pairs a printf-style format string with its ordered argument
// sequence. Two live per logger: one for tags, one for messages.
type template struct {
	format string
	args   []Arg
}

// render resolves the argument sequence against the frame and message,
// then substitutes it into the format string through the locale-aware
// printer.
//
// A format that consumes more arguments than were configured is a
// formatting failure for this call. Surplus arguments are truncated
// before substitution so extras are ignored silently instead of being
// echoed as fmt EXTRA noise.
func (t template) render(p *message.Printer, f Frame, msg string) (string, error) {
	need, err := slotCount(t.format)
	if err != nil {
		return "", err
	}
	if need > len(t.args) {
		return "", errors.Errorf("format %q consumes %d arguments, have %d", t.format, need, len(t.args))
	}
	resolved := make([]interface{}, need)
	for i, a := range t.args[:need] {
		if a.symbolic {
			resolved[i] = a.placeholder.resolve(f, msg)
		} else {
			resolved[i] = a.literal
		}
	}
	return p.Sprintf(t.format, resolved...), nil
}

// validate rejects templates that could never render: malformed argument
// indexes and placeholders outside the defined set. Slot/argument count
// is deliberately not checked here; surplus slots only fail at render
// time, per the formatting contract.
func (t template) validate() error {
	if _, err := slotCount(t.format); err != nil {
		return err
	}
	for _, a := range t.args {
		if a.symbolic && !a.placeholder.known() {
			return errors.Errorf("undefined placeholder %s", a.placeholder)
		}
	}
	return nil
}

// slotCount reports how many arguments format consumes, following fmt's
// verb syntax ("%%" escapes, flags, "*" width and precision, explicit
// "%[n]" indexes). Explicit indexes raise the count to the highest index
// referenced.
func slotCount(format string) (int, error) {
	var next, max int
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			i++
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		if i < len(format) && format[i] == '*' {
			next++
			i++
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				next++
				i++
			} else {
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}
		if i < len(format) && format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return 0, errors.Errorf("missing ] in argument index of %q", format)
			}
			n, err := strconv.Atoi(format[i+1 : i+end])
			if err != nil || n < 1 {
				return 0, errors.Errorf("bad argument index in %q", format)
			}
			next = n - 1
			i += end + 1
		}
		if i >= len(format) {
			// Trailing bare '%' renders as noise but consumes nothing.
			break
		}
		i++
		next++
		if next > max {
			max = next
		}
	}
	return max, nil
}

// systemLocale finds the best language tag for the process environment,
// falling back to English when nothing usable is set.
func systemLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if dot := strings.IndexByte(v, '.'); dot >= 0 {
			v = v[:dot]
		}
		tag, err := language.Parse(strings.Replace(v, "_", "-", -1))
		if err == nil {
			return tag
		}
	}
	return language.English
}
