//go:build debug

// Package diagnostics carries the kernel's debug-only tracing. It follows
// the same build-tag-gated logger pattern used elsewhere in the wider geom
// ecosystem: compiled out entirely unless the "debug" build tag is set, so
// the hot sweep/triangulation loops never pay for it in ordinary builds.
package diagnostics

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[planekernel DEBUG] ", log.LstdFlags)

// Logf logs a debug trace message when the "debug" build tag is active.
func Logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
