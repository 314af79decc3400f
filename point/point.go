// Package point defines the primitive geometric contracts the kernel
// consumes: an exact-rational Point, an undirected Segment, and the three
// predicates every downstream component (the sweep and the triangulator
// alike) is built from — orientation, crossing-segment intersection, and
// lexicographic pair sorting.
package point

import (
	"fmt"

	"github.com/exactgeom/planekernel/internal/rational"
)

// Point is an ordered pair (X, Y) of exact rationals.
type Point struct {
	X, Y rational.Rat
}

// New builds a Point from a pair of exact rationals.
func New(x, y rational.Rat) Point {
	return Point{X: x, Y: y}
}

// NewFromInt64 builds a Point from integer coordinates; mainly useful in
// tests and examples where coordinates are small whole numbers.
func NewFromInt64(x, y int64) Point {
	return Point{X: rational.NewFromInt64(x), Y: rational.NewFromInt64(y)}
}

// NewFromFloat64 builds a Point from float64 coordinates, the boundary
// for callers whose input arrives as floating-point. It returns
// rational.ErrInvalidScalar if either coordinate is NaN or infinite.
func NewFromFloat64(x, y float64) (Point, error) {
	rx, err := rational.NewFromFloat64(x)
	if err != nil {
		return Point{}, err
	}
	ry, err := rational.NewFromFloat64(y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: rx, Y: ry}, nil
}

// Cmp orders two points lexicographically: by X first, then by Y.
func (p Point) Cmp(other Point) int {
	if c := p.X.Cmp(other.X); c != 0 {
		return c
	}
	return p.Y.Cmp(other.Y)
}

// Less reports whether p sorts strictly before other under lexicographic
// order.
func (p Point) Less(other Point) bool {
	return p.Cmp(other) < 0
}

// Equal reports whether p and other denote the same coordinates.
func (p Point) Equal(other Point) bool {
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// String renders p as "(x, y)" for diagnostics and test failure messages.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Segment is an undirected pair of distinct points. Hash and equality (see
// [Segment.Equal]) are endpoint-set based: a Segment does not distinguish
// which of its two fields is "first".
type Segment struct {
	Start, End Point
}

// NewSegment builds a Segment from two distinct points.
func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Equal reports whether two segments share the same unordered endpoint
// pair.
func (s Segment) Equal(other Segment) bool {
	if s.Start.Equal(other.Start) && s.End.Equal(other.End) {
		return true
	}
	return s.Start.Equal(other.End) && s.End.Equal(other.Start)
}

// ToSortedPair returns (a, b) if a <= b under lexicographic order,
// otherwise (b, a).
func ToSortedPair(a, b Point) (Point, Point) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// Orientation is the sign of the turn formed by an ordered triple of
// points.
type Orientation uint8

const (
	// Collinear indicates the three points lie on a common line.
	Collinear Orientation = iota
	// Clockwise indicates the triple turns clockwise.
	Clockwise
	// CounterClockwise indicates the triple turns counterclockwise.
	CounterClockwise
)

// String renders the Orientation for diagnostics and test failure
// messages.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic("point: unsupported Orientation value")
	}
}

// Orient returns the orientation of the ordered triple (a, b, c): the sign
// of (b.X-a.X)(c.Y-a.Y) - (b.Y-a.Y)(c.X-a.X), evaluated exactly.
func Orient(a, b, c Point) Orientation {
	left := b.X.Sub(a.X).Mul(c.Y.Sub(a.Y))
	right := b.Y.Sub(a.Y).Mul(c.X.Sub(a.X))
	switch left.Sub(right).Sign() {
	case 0:
		return Collinear
	case 1:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// IntersectCrossingSegments returns the intersection point of segment
// (p1, p2) and segment (q1, q2).
//
// Precondition: the two segments are known to cross in their interiors —
// q1 and q2 lie on opposite sides of line p1p2, and p1, p2 lie on opposite
// sides of line q1q2. It is never called on collinear or merely-touching
// segments; callers establish that via [Orient] first.
func IntersectCrossingSegments(p1, p2, q1, q2 Point) Point {
	// Standard parametric crossing formula, evaluated exactly:
	// p1 + t*(p2-p1) where t = cross(q1-p1, q2-q1) / cross(p2-p1, q2-q1).
	rx := p2.X.Sub(p1.X)
	ry := p2.Y.Sub(p1.Y)
	sx := q2.X.Sub(q1.X)
	sy := q2.Y.Sub(q1.Y)

	rxs := rx.Mul(sy).Sub(ry.Mul(sx))
	qpx := q1.X.Sub(p1.X)
	qpy := q1.Y.Sub(p1.Y)
	numerator := qpx.Mul(sy).Sub(qpy.Mul(sx))

	// rxs is non-zero by precondition: the segments are not collinear.
	t, err := numerator.Quo(rxs)
	if err != nil {
		panic("point: IntersectCrossingSegments called on parallel segments")
	}
	return Point{
		X: p1.X.Add(t.Mul(rx)),
		Y: p1.Y.Add(t.Mul(ry)),
	}
}
