// Package kernelerrors defines the sentinel errors the core reports to
// its callers, shared between the engine packages that can produce them
// and the root package that re-exports them.
package kernelerrors

import "errors"

// ErrInvalidArity reports too few vertices or points for the requested
// operation.
var ErrInvalidArity = errors.New("planekernel: invalid arity")
