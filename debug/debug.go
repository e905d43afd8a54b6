// Package debug holds switches for diagnostic output, read once from the
// environment at start up:
//
//	CFG_DEBUG_LOAD      configuration loading and variable seeding
//	CFG_DEBUG_TRAVERSE  each step of path resolution
//	CFG_DEBUG_SUBST     unresolved variable references
//	CFG_DEBUG_WATCH     file watcher events
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Load     bool
	Traverse bool
	Subst    bool
	Watch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("CFG_DEBUG_LOAD")
	d.Traverse = boolEnv("CFG_DEBUG_TRAVERSE")
	d.Subst = boolEnv("CFG_DEBUG_SUBST")
	d.Watch = boolEnv("CFG_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Traverse() bool {
	return d.Traverse
}
func Subst() bool {
	return d.Subst
}
func Watch() bool {
	return d.Watch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Logger returns l, or slog.Default() when l is nil.
func Logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
