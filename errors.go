package planekernel

import (
	"github.com/exactgeom/planekernel/internal/kernelerrors"
	"github.com/exactgeom/planekernel/internal/rational"
)

var (
	// ErrInvalidArity reports too few vertices or points for the
	// requested operation (e.g. an empty point set passed to Delaunay).
	ErrInvalidArity = kernelerrors.ErrInvalidArity
	// ErrInvalidScalar reports a coordinate from an external source with
	// no exact rational value (NaN or an infinity).
	ErrInvalidScalar = rational.ErrInvalidScalar
	// ErrUndefinedDivision reports a zero denominator in a rational
	// constructed from a numerator/denominator pair.
	ErrUndefinedDivision = rational.ErrUndefinedDivision
)
