//go:build !debug

package diagnostics

// Logf is a no-op outside of builds tagged "debug".
func Logf(format string, v ...interface{}) {}
