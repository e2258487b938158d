// Package appinfo derives a human-readable label for the running
// application, for use as a default log tag.
package appinfo

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
)

// Unknown is returned when no label can be derived.
const Unknown = "[Unknown]"

var (
	mu    sync.RWMutex
	label string
)

// SetLabel overrides the derived application label. An empty s restores
// derivation.
func SetLabel(s string) {
	mu.Lock()
	label = s
	mu.Unlock()
}

// Label returns the application label: the override set with SetLabel
// if any, otherwise the main module path's last element from build
// info, otherwise the executable name, otherwise Unknown.
func Label() string {
	mu.RLock()
	s := label
	mu.RUnlock()
	if s != "" {
		return s
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return filepath.Base(info.Main.Path)
	}
	if exe, err := os.Executable(); err == nil && exe != "" {
		return filepath.Base(exe)
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return Unknown
}
