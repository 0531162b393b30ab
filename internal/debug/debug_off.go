//go:build !debug

// Package debug prints parser internals when built with the "debug" tag.
package debug

const Enabled = false

// Printf is a no-op unless compiled with the "debug" tag.
func Printf(f string, args ...any) {}

// Dump is a no-op unless compiled with the "debug" tag.
func Dump(v ...any) {}
