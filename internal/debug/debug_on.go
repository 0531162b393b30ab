//go:build debug

// Package debug prints parser internals when built with the "debug" tag.
package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|XYLEM| ", 0)

// Printf writes a debug line to stderr.
func Printf(f string, args ...any) {
	logger.Printf(f, args...)
}

// Dump writes a deep representation of v to stderr.
func Dump(v ...any) {
	spew.Fdump(os.Stderr, v...)
}
