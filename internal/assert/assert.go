//go:build !debug

// Package assert guards structural invariants of the core: left-event
// parity, distinct operands to the sweep's intersection and merge helpers,
// and defined quad-edge origins. Opposite symmetry, collinear-class
// root-chase depth and quad-edge ring closure are not checked. These are
// debugging aids only, compiled out of ordinary builds — they must never be relied on
// for input validation; see the root package's sentinel errors for that.
package assert

// Invariant is a no-op outside of builds tagged "debug".
func Invariant(cond bool, msg string) {}
