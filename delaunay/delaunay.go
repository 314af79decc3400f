// Package delaunay implements the divide-and-conquer Delaunay
// triangulator over a quad-edge mesh: sort and deduplicate the input
// points, recursively triangulate halves split on the median index, and
// merge them by walking up from a lower common tangent, swapping in
// whichever of the left or right candidate edge passes the in-circle
// test at each step. It is grounded on the original implementation's
// triangulation/delaunay.rs for the base cases and boundary walk, and on
// the classical Guibas-Stolfi merge (the algorithm the quad-edge registry
// in quadedge/ was built to support) for the recursive case, which the
// retrieved source did not carry.
package delaunay

import (
	"sort"

	"github.com/exactgeom/planekernel/internal/kernelerrors"
	"github.com/exactgeom/planekernel/point"
	"github.com/exactgeom/planekernel/quadedge"
)

// minBoundaryWalkPoints is the point count below which the outer-face
// walk is meaningless: with 0, 1 or 2 points there is no enclosing ring
// to trace, so the boundary is just the points themselves.
const minBoundaryWalkPoints = 3

// Triangulation is a Delaunay triangulation of a deduplicated point set.
type Triangulation struct {
	registry  *quadedge.Registry
	points    []point.Point
	leftSide  quadedge.Edge
	rightSide quadedge.Edge
	hasEdges  bool
}

// Delaunay builds the Delaunay triangulation of points. Points are sorted
// lexicographically and deduplicated before construction.
func Delaunay(points []point.Point) (*Triangulation, error) {
	if len(points) == 0 {
		return nil, kernelerrors.ErrInvalidArity
	}

	sorted := append([]point.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	deduped := sorted[:0:0]
	for i, p := range sorted {
		if i == 0 || !p.Equal(sorted[i-1]) {
			deduped = append(deduped, p)
		}
	}

	registry := quadedge.NewRegistry(deduped)
	t := &Triangulation{registry: registry, points: deduped}
	if len(deduped) < 2 {
		return t, nil
	}
	t.leftSide, t.rightSide = triangulate(registry, deduped, 0, len(deduped))
	t.hasEdges = true
	return t, nil
}

// IsEmpty reports whether the triangulation has fewer than two distinct
// points and so contains no edges.
func (t *Triangulation) IsEmpty() bool {
	return !t.hasEdges
}

// BoundaryPoints walks the outer face starting from the triangulation's
// leftmost edge and returns its vertices in order, with collinear
// interior vertices of the walk removed.
func (t *Triangulation) BoundaryPoints() []point.Point {
	if len(t.points) < minBoundaryWalkPoints {
		return append([]point.Point(nil), t.points...)
	}

	result := make([]point.Point, 0, len(t.points))
	start := t.leftSide
	edge := start
	for {
		result = append(result, t.registry.Start(edge))
		candidate := t.registry.Rprev(edge)
		if candidate == start {
			break
		}
		edge = candidate
	}
	return shrinkCollinearVertices(result)
}

// TriangleVertices enumerates every inner (bounded) triangular face and
// returns its three vertices in counterclockwise order, skipping the
// unbounded outer face.
func (t *Triangulation) TriangleVertices() [][3]point.Point {
	if !t.hasEdges {
		return nil
	}

	count := t.registry.EdgeCount()
	visited := make(map[quadedge.Edge]bool, count)
	var triangles [][3]point.Point

	for i := 0; i < count; i += 4 {
		for _, e := range [2]quadedge.Edge{quadedge.Edge(i), quadedge.Sym(quadedge.Edge(i))} {
			if visited[e] {
				continue
			}
			e1 := t.registry.Lnext(e)
			e2 := t.registry.Lnext(e1)
			visited[e] = true
			if e1 == e || e2 == e || t.registry.Lnext(e2) != e {
				continue
			}
			visited[e1] = true
			visited[e2] = true

			a, b, c := t.registry.Start(e), t.registry.Start(e1), t.registry.Start(e2)
			if point.Orient(a, b, c) == point.CounterClockwise {
				triangles = append(triangles, [3]point.Point{a, b, c})
			}
		}
	}
	return triangles
}

// shrinkCollinearVertices removes every vertex of a closed polygon whose
// two neighbours already make it collinear, since such a vertex marks no
// actual direction change in the boundary.
func shrinkCollinearVertices(vertices []point.Point) []point.Point {
	n := len(vertices)
	if n < 3 {
		return vertices
	}
	result := make([]point.Point, 0, n)
	for i, v := range vertices {
		prev := vertices[(i-1+n)%n]
		next := vertices[(i+1)%n]
		if point.Orient(prev, v, next) != point.Collinear {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return vertices
	}
	return result
}

// triangulate recursively builds the Delaunay triangulation of
// points[lo:hi], returning its leftmost and rightmost boundary edges
// (each directed with its origin on that boundary).
func triangulate(reg *quadedge.Registry, points []point.Point, lo, hi int) (quadedge.Edge, quadedge.Edge) {
	switch hi - lo {
	case 2:
		a := reg.CreateEdge(lo, lo+1)
		return a, quadedge.Sym(a)

	case 3:
		a := reg.CreateEdge(lo, lo+1)
		b := reg.CreateEdge(lo+1, lo+2)
		reg.Splice(quadedge.Sym(a), b)

		switch point.Orient(points[lo], points[lo+1], points[lo+2]) {
		case point.CounterClockwise:
			reg.ConnectEdges(b, a)
			return a, quadedge.Sym(b)
		case point.Clockwise:
			c := reg.ConnectEdges(b, a)
			return quadedge.Sym(c), c
		default:
			return a, quadedge.Sym(b)
		}

	default:
		split := lo + (hi-lo)/2
		ldo, ldi := triangulate(reg, points, lo, split)
		rdi, rdo := triangulate(reg, points, split, hi)

		for {
			if leftOf(reg, reg.Start(rdi), ldi) {
				ldi = reg.Lnext(ldi)
			} else if rightOf(reg, reg.Start(ldi), rdi) {
				rdi = reg.Rprev(rdi)
			} else {
				break
			}
		}

		basel := reg.ConnectEdges(quadedge.Sym(rdi), ldi)
		if reg.Start(ldi).Equal(reg.Start(ldo)) {
			ldo = quadedge.Sym(basel)
		}
		if reg.Start(rdi).Equal(reg.Start(rdo)) {
			rdo = basel
		}

		for {
			// Advance lcand past any candidate that fails the in-circle
			// test against basel, deleting each as it is passed.
			lcand := reg.Onext(quadedge.Sym(basel))
			if valid(reg, lcand, basel) {
				for inCircle(reg.End(basel), reg.Start(basel), reg.End(lcand), reg.End(reg.Onext(lcand))) {
					next := reg.Onext(lcand)
					reg.DeleteEdge(lcand)
					lcand = next
				}
			}
			// Symmetrically for rcand.
			rcand := reg.Oprev(basel)
			if valid(reg, rcand, basel) {
				for inCircle(reg.End(basel), reg.Start(basel), reg.End(rcand), reg.End(reg.Oprev(rcand))) {
					next := reg.Oprev(rcand)
					reg.DeleteEdge(rcand)
					rcand = next
				}
			}

			lcandValid := valid(reg, lcand, basel)
			rcandValid := valid(reg, rcand, basel)
			if !lcandValid && !rcandValid {
				break
			}
			if !lcandValid || (rcandValid && inCircle(reg.End(lcand), reg.Start(lcand), reg.Start(rcand), reg.End(rcand))) {
				basel = reg.ConnectEdges(rcand, quadedge.Sym(basel))
			} else {
				basel = reg.ConnectEdges(quadedge.Sym(basel), quadedge.Sym(lcand))
			}
		}

		return ldo, rdo
	}
}

// leftOf reports whether p lies strictly to the left of the directed edge
// e, travelling from e's origin to its destination.
func leftOf(reg *quadedge.Registry, p point.Point, e quadedge.Edge) bool {
	return point.Orient(p, reg.Start(e), reg.End(e)) == point.CounterClockwise
}

// rightOf reports whether p lies strictly to the right of the directed
// edge e.
func rightOf(reg *quadedge.Registry, p point.Point, e quadedge.Edge) bool {
	return point.Orient(p, reg.End(e), reg.Start(e)) == point.CounterClockwise
}

// valid reports whether candidate edge e still points to a destination on
// the correct side of basel to be considered during the merge walk.
func valid(reg *quadedge.Registry, e, basel quadedge.Edge) bool {
	return rightOf(reg, reg.End(e), basel)
}
