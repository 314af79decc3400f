package planekernel

import (
	"math/big"

	"github.com/exactgeom/planekernel/contour"
	"github.com/exactgeom/planekernel/delaunay"
	"github.com/exactgeom/planekernel/internal/rational"
	"github.com/exactgeom/planekernel/point"
)

// Point is an exact-rational coordinate pair.
type Point = point.Point

// Segment is an undirected pair of distinct Points.
type Segment = point.Segment

// Triangulation is a Delaunay triangulation of a point set.
type Triangulation = delaunay.Triangulation

// NewPoint builds a Point from integer coordinates.
func NewPoint(x, y int64) Point {
	return point.NewFromInt64(x, y)
}

// NewPointFromFloat64 builds a Point from float64 coordinates. It returns
// ErrInvalidScalar if either coordinate is NaN or infinite.
func NewPointFromFloat64(x, y float64) (Point, error) {
	return point.NewFromFloat64(x, y)
}

// NewPointFromRatio builds a Point from explicit numerator/denominator
// pairs. It returns ErrUndefinedDivision if either denominator is zero.
func NewPointFromRatio(xNum, xDen, yNum, yDen *big.Int) (Point, error) {
	x, err := rational.NewFromBigInts(xNum, xDen)
	if err != nil {
		return Point{}, err
	}
	y, err := rational.NewFromBigInts(yNum, yDen)
	if err != nil {
		return Point{}, err
	}
	return point.New(x, y), nil
}

// NewSegment builds a Segment from two distinct points.
func NewSegment(start, end Point) Segment {
	return point.NewSegment(start, end)
}

// SweepUnique returns the maximal set of pairwise non-overlapping,
// non-crossing segments whose union equals the union of segments.
func SweepUnique(segments []Segment) []Segment {
	return contour.ToUniqueNonCrossingOrOverlappingSegments(segments)
}

// IsContourValid reports whether segments, taken as a cyclically-ordered
// chain, forms a simple polygon boundary: its segments only touch at
// consecutive-segment shared vertices.
func IsContourValid(segments []Segment) bool {
	return contour.IsContourValid(segments)
}

// Delaunay builds the Delaunay triangulation of points. It returns
// ErrInvalidArity if points is empty.
func Delaunay(points []Point) (*Triangulation, error) {
	return delaunay.Delaunay(points)
}
