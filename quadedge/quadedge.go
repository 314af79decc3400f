// Package quadedge implements the Guibas-Stolfi quad-edge data structure:
// every undirected edge is stored as four directed half-edges, and the
// whole planar subdivision is built from two primitives, splice and
// create, with every other navigation and editing operation derived from
// them. It is grounded on the original implementation's
// quad_edge_registry.rs, which is carried over index-for-index (the
// four-half-edge indexing, the Onext table under the name left_from_start,
// and the splice/connect/delete bodies).
package quadedge

import (
	"github.com/exactgeom/planekernel/internal/assert"
	"github.com/exactgeom/planekernel/point"
)

// Edge is a directed half-edge index. Each undirected edge occupies four
// consecutive indices 4k, 4k+1, 4k+2, 4k+3: the edge itself, its
// rotation into the dual, its reversal (Sym), and the dual's reversal.
type Edge int

// Undefined marks a half-edge slot with no assigned origin, used for the
// two dual slots of a newly created edge (its rotation and inverse
// rotation), which have no endpoint as origin.
const Undefined = -1

// Rot returns the dual edge 90 degrees counterclockwise from e.
func Rot(e Edge) Edge {
	return (e &^ 3) | ((e + 1) & 3)
}

// Sym returns e reversed (rotated 180 degrees).
func Sym(e Edge) Edge {
	return (e &^ 3) | ((e + 2) & 3)
}

// InvRot returns the dual edge 90 degrees clockwise from e.
func InvRot(e Edge) Edge {
	return (e &^ 3) | ((e + 3) & 3)
}

// Registry owns the endpoint table and the Onext ring structure of a
// planar subdivision under construction.
type Registry struct {
	endpoints    []point.Point
	onext        []Edge
	startIndices []int
}

// NewRegistry builds an empty registry over endpoints, preallocating
// table capacity for a fully triangulated mesh (each point spawns roughly
// three edges, each edge four half-edges).
func NewRegistry(endpoints []point.Point) *Registry {
	capacityHint := 4 * 3 * len(endpoints)
	return &Registry{
		endpoints:    endpoints,
		onext:        make([]Edge, 0, capacityHint),
		startIndices: make([]int, 0, capacityHint),
	}
}

// Start returns the endpoint e originates from.
func (r *Registry) Start(e Edge) point.Point {
	return r.endpoints[r.toStartIndex(e)]
}

// End returns the endpoint e terminates at.
func (r *Registry) End(e Edge) point.Point {
	return r.endpoints[r.toStartIndex(Sym(e))]
}

func (r *Registry) toStartIndex(e Edge) int {
	idx := r.startIndices[e]
	assert.Invariant(idx != Undefined, "quadedge: start index undefined for edge")
	return idx
}

func (r *Registry) toEndIndex(e Edge) int {
	return r.startIndices[Sym(e)]
}

// EdgeCount returns the number of half-edges allocated so far, including
// any that have since been spliced out by DeleteEdge.
func (r *Registry) EdgeCount() int {
	return len(r.onext)
}

// Onext returns the next edge counterclockwise around e's origin.
func (r *Registry) Onext(e Edge) Edge {
	return r.onext[e]
}

// Oprev returns the next edge clockwise around e's origin.
func (r *Registry) Oprev(e Edge) Edge {
	return Rot(r.Onext(Rot(e)))
}

// Lnext returns the next edge counterclockwise around e's left face.
func (r *Registry) Lnext(e Edge) Edge {
	return Rot(r.Onext(InvRot(e)))
}

// Rprev returns the next edge clockwise around e's right face — the
// continuation used to walk a face boundary.
func (r *Registry) Rprev(e Edge) Edge {
	return r.Onext(Sym(e))
}

// CreateEdge appends a new, unconnected edge from startIndex to endIndex:
// its Onext ring initially contains only itself, and its dual's Onext ring
// contains only its own rotated sibling, the standard initial state before
// any splice.
func (r *Registry) CreateEdge(startIndex, endIndex int) Edge {
	edge := Edge(len(r.onext))
	rotated := edge + 1
	opposite := edge + 2
	invRotated := edge + 3

	r.startIndices = append(r.startIndices, startIndex, Undefined, endIndex, Undefined)
	r.onext = append(r.onext, edge, invRotated, opposite, rotated)
	return edge
}

// ConnectEdges creates a new edge from the end of first to the start of
// second, splicing it into first's left-face ring at its origin and into
// second's ring at its destination.
func (r *Registry) ConnectEdges(first, second Edge) Edge {
	result := r.CreateEdge(r.toEndIndex(first), r.toStartIndex(second))
	r.Splice(result, r.Lnext(first))
	r.Splice(Sym(result), second)
	return result
}

// DeleteEdge splices e out of both of its origin rings (its own and its
// Sym's), disconnecting it from the subdivision.
func (r *Registry) DeleteEdge(e Edge) {
	r.Splice(e, r.Oprev(e))
	opposite := Sym(e)
	r.Splice(opposite, r.Oprev(opposite))
}

// Splice is the fundamental quad-edge topological operator: it swaps the
// Onext pointers of first and second, along with those of their rotated
// duals. If first and second's origin rings were the same ring, splicing
// breaks it into two; if they were different rings, splicing merges them
// into one.
func (r *Registry) Splice(first, second Edge) {
	alpha := Rot(r.Onext(first))
	beta := Rot(r.Onext(second))

	r.onext[first], r.onext[second] = r.onext[second], r.onext[first]
	r.onext[alpha], r.onext[beta] = r.onext[beta], r.onext[alpha]
}
