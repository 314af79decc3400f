package contour

import "github.com/exactgeom/planekernel/point"

// Relation classifies how two segments relate to each other, evaluated
// exactly (no tolerance).
type Relation int

const (
	// Disjoint segments share no point.
	Disjoint Relation = iota
	// Touch segments meet at exactly one point, which may or may not be
	// an endpoint of either segment.
	Touch
	// Cross segments intersect properly in both of their interiors.
	Cross
	// Overlap segments are collinear and share more than one point.
	Overlap
)

// String renders the Relation for diagnostics and test failure messages.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Touch:
		return "Touch"
	case Cross:
		return "Cross"
	case Overlap:
		return "Overlap"
	default:
		panic("contour: unsupported Relation value")
	}
}

// Relate classifies the relationship between a and b using exact
// orientation predicates.
func Relate(a, b point.Segment) Relation {
	o1 := point.Orient(a.Start, a.End, b.Start)
	o2 := point.Orient(a.Start, a.End, b.End)
	if o1 == point.Collinear && o2 == point.Collinear {
		return relateCollinear(a, b)
	}

	o3 := point.Orient(b.Start, b.End, a.Start)
	o4 := point.Orient(b.Start, b.End, a.End)
	if o1 != point.Collinear && o2 != point.Collinear && o3 != point.Collinear && o4 != point.Collinear &&
		o1 != o2 && o3 != o4 {
		return Cross
	}
	if onSegment(a.Start, b) || onSegment(a.End, b) || onSegment(b.Start, a) || onSegment(b.End, a) {
		return Touch
	}
	return Disjoint
}

// relateCollinear handles the case where all four endpoints lie on a
// common line, classifying the pair by the overlap of their parameter
// intervals along that line.
func relateCollinear(a, b point.Segment) Relation {
	aLo, aHi := point.ToSortedPair(a.Start, a.End)
	bLo, bHi := point.ToSortedPair(b.Start, b.End)
	if aHi.Less(bLo) || bHi.Less(aLo) {
		return Disjoint
	}
	if aHi.Equal(bLo) || bHi.Equal(aLo) {
		return Touch
	}
	return Overlap
}

// onSegment reports whether p lies on the closed segment s (collinear and
// within its endpoint range).
func onSegment(p point.Point, s point.Segment) bool {
	if point.Orient(s.Start, s.End, p) != point.Collinear {
		return false
	}
	lo, hi := point.ToSortedPair(s.Start, s.End)
	return !p.Less(lo) && !hi.Less(p)
}

// sharesVertex reports whether a and b have an endpoint in common.
func sharesVertex(a, b point.Segment) bool {
	return a.Start.Equal(b.Start) || a.Start.Equal(b.End) ||
		a.End.Equal(b.Start) || a.End.Equal(b.End)
}
