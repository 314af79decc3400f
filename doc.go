// Package planekernel is a 2D computational-geometry kernel: an
// exact-rational Bentley-Ottmann plane-sweep engine for segment
// intersection, subdivision and collinear-segment unification, and a
// quad-edge-based divide-and-conquer Delaunay triangulator.
//
// Every coordinate is an arbitrary-precision rational (see the internal
// rational package), so every predicate the kernel relies on — crossing
// detection, sweep-line ordering, the in-circle test — is decided
// exactly, never by a floating-point tolerance.
package planekernel
