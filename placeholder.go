package logex

import (
	"fmt"
	"path"
	"strings"
)

// Unknown is substituted for name placeholders that cannot be resolved.
const Unknown = "[Unknown]"

// Placeholder identifies a symbolic template argument that is replaced
// with the appropriate call-site value when a record is logged.
type Placeholder int

const (
	// ClassName resolves to the fully qualified declaring symbol,
	// receiver decoration included ("pkg/path.(*Server)").
	ClassName Placeholder = iota
	// CanonicalName resolves like ClassName with the receiver
	// decoration normalized away ("pkg/path.Server").
	CanonicalName
	// SimpleClassName resolves to the bare declaring type name, or the
	// package base name for free functions.
	SimpleClassName
	// FileName resolves to the base name of the call-site source file.
	FileName
	// LineNumber resolves to the call-site line number.
	LineNumber
	// MethodName resolves to the bare method or function name.
	MethodName
	// HashCode resolves to an identity hash of the call-site frame.
	HashCode
	// Message resolves to the literal string being logged.
	Message
	// Package resolves to the import path of the declaring package.
	Package
)

var placeholderNames = map[Placeholder]string{
	ClassName:       "ClassName",
	CanonicalName:   "CanonicalName",
	SimpleClassName: "SimpleClassName",
	FileName:        "FileName",
	LineNumber:      "LineNumber",
	MethodName:      "MethodName",
	HashCode:        "HashCode",
	Message:         "Message",
	Package:         "Package",
}

// String returns a string representation of the given placeholder
func (p Placeholder) String() string {
	if name, ok := placeholderNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Placeholder(%d)", int(p))
}

// known reports whether p is one of the defined variants.
func (p Placeholder) known() bool {
	_, ok := placeholderNames[p]
	return ok
}

// resolvers is the closed lookup table: one pure function per variant.
// Resolution only ever reads the supplied frame and message.
var resolvers = map[Placeholder]func(f Frame, msg string) interface{}{
	ClassName: func(f Frame, _ string) interface{} {
		return resolveName(f, ClassName)
	},
	CanonicalName: func(f Frame, _ string) interface{} {
		return resolveName(f, CanonicalName)
	},
	SimpleClassName: func(f Frame, _ string) interface{} {
		return resolveName(f, SimpleClassName)
	},
	FileName: func(f Frame, _ string) interface{} {
		if f.File == "" {
			return Unknown
		}
		return path.Base(f.File)
	},
	LineNumber: func(f Frame, _ string) interface{} {
		return f.Line
	},
	MethodName: func(f Frame, _ string) interface{} {
		sym, ok := parseSymbol(f.Function)
		if !ok || len(sym.chain) == 0 {
			return Unknown
		}
		return sym.chain[len(sym.chain)-1]
	},
	HashCode: func(f Frame, _ string) interface{} {
		return f.hash()
	},
	Message: func(_ Frame, msg string) interface{} {
		return msg
	},
	Package: func(f Frame, _ string) interface{} {
		sym, ok := parseSymbol(f.Function)
		if !ok {
			return Unknown
		}
		return sym.pkgPath
	},
}

// resolve computes the value p stands for at the given call site.
func (p Placeholder) resolve(f Frame, msg string) interface{} {
	if fn, ok := resolvers[p]; ok {
		return fn(f, msg)
	}
	return Unknown
}

// symbolInfo splits a runtime function symbol such as
// "github.com/acme/app.(*Server).handle.func1" into the declaring
// package's import path and the dot-separated declaration chain inside
// it (receiver type, method, nested function literals).
type symbolInfo struct {
	pkgPath string
	chain   []string
}

func parseSymbol(function string) (symbolInfo, bool) {
	if function == "" {
		return symbolInfo{}, false
	}
	start := 0
	if slash := strings.LastIndex(function, "/"); slash >= 0 {
		start = slash + 1
	}
	dot := strings.Index(function[start:], ".")
	if dot < 0 {
		return symbolInfo{}, false
	}
	dot += start
	return symbolInfo{
		pkgPath: function[:dot],
		chain:   strings.Split(function[dot+1:], "."),
	}, true
}

// owner is the declaration chain minus its innermost element: the entity
// that declares the function the frame points into. Walking owner
// repeatedly moves outward through enclosing declarations.
func (s symbolInfo) owner() symbolInfo {
	if len(s.chain) == 0 {
		return s
	}
	return symbolInfo{pkgPath: s.pkgPath, chain: s.chain[:len(s.chain)-1]}
}

func (s symbolInfo) className() string {
	if len(s.chain) == 0 {
		return s.pkgPath
	}
	return s.pkgPath + "." + strings.Join(s.chain, ".")
}

func (s symbolInfo) canonicalName() string {
	if len(s.chain) == 0 {
		return s.pkgPath
	}
	if anonymous(s.chain[len(s.chain)-1]) {
		return ""
	}
	parts := make([]string, len(s.chain))
	for i, elem := range s.chain {
		parts[i] = stripReceiver(elem)
	}
	return s.pkgPath + "." + strings.Join(parts, ".")
}

func (s symbolInfo) simpleName() string {
	if len(s.chain) == 0 {
		return path.Base(s.pkgPath)
	}
	last := s.chain[len(s.chain)-1]
	if anonymous(last) {
		return ""
	}
	return stripReceiver(last)
}

// resolveName computes the requested name kind for the frame's declaring
// entity. Compiler-generated declarations (function literals and the
// like) have no usable name of their own, so empty results walk outward
// through enclosing declarations until something non-empty turns up; the
// package level always names itself, so the walk only fails when the
// symbol could not be parsed at all.
func resolveName(f Frame, kind Placeholder) string {
	sym, ok := parseSymbol(f.Function)
	if !ok {
		return Unknown
	}
	for cur := sym.owner(); ; cur = cur.owner() {
		var name string
		switch kind {
		case CanonicalName:
			name = cur.canonicalName()
		case SimpleClassName:
			name = cur.simpleName()
		default:
			name = cur.className()
		}
		if name != "" {
			return name
		}
		if len(cur.chain) == 0 {
			break
		}
	}
	return Unknown
}

// anonymous reports whether a chain element names a compiler-generated
// declaration ("func1", deferred literal indexes) rather than one written
// in source.
func anonymous(elem string) bool {
	if elem == "" {
		return true
	}
	if strings.HasPrefix(elem, "func") && allDigits(elem[4:]) && len(elem) > 4 {
		return true
	}
	return allDigits(elem)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func stripReceiver(elem string) string {
	elem = strings.TrimPrefix(elem, "(")
	elem = strings.TrimSuffix(elem, ")")
	return strings.TrimPrefix(elem, "*")
}
