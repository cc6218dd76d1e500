// Package focus holds the shared focus flag for the single logical window.
// The platform has exactly one window, so focus is a single cell written by
// the dispatch goroutine on every focus notification and read from arbitrary
// goroutines via Window.HasFocus. The flag is injected into the loop and the
// window facade rather than living as a package global so it can be tested
// in isolation.
package focus

import "sync/atomic"

// Flag is an atomically accessed focus state. Plain load/store visibility is
// all that is required; the value is advisory UI state.
type Flag struct {
	unfocused atomic.Bool
}

// New returns a flag initialized to focused, matching the process-start
// assumption of the native runtime.
func New() *Flag {
	return &Flag{}
}

// Set records a focus transition.
func (f *Flag) Set(focused bool) {
	f.unfocused.Store(!focused)
}

// Focused reports the most recent focus state.
func (f *Flag) Focused() bool {
	return !f.unfocused.Load()
}
