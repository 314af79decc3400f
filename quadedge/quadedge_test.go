package quadedge

import (
	"testing"

	"github.com/exactgeom/planekernel/point"
)

func TestRotSymInvRot(t *testing.T) {
	e := Edge(4) // first half-edge of the second quad-edge group
	if Sym(Sym(e)) != e {
		t.Errorf("Sym(Sym(e)) != e")
	}
	if Rot(Rot(Rot(Rot(e)))) != e {
		t.Errorf("four Rot applications should return to e")
	}
	if InvRot(Rot(e)) != e {
		t.Errorf("InvRot(Rot(e)) != e")
	}
	if Rot(e) == InvRot(e) {
		t.Errorf("Rot and InvRot should differ for a non-self-dual edge")
	}
}

func TestCreateEdgeIsolatedRing(t *testing.T) {
	r := NewRegistry([]point.Point{point.NewFromInt64(0, 0), point.NewFromInt64(1, 0)})
	e := r.CreateEdge(0, 1)
	if !r.Start(e).Equal(point.NewFromInt64(0, 0)) {
		t.Errorf("Start(e) = %s, want (0, 0)", r.Start(e))
	}
	if !r.End(e).Equal(point.NewFromInt64(1, 0)) {
		t.Errorf("End(e) = %s, want (1, 0)", r.End(e))
	}
	if r.Onext(e) != e {
		t.Errorf("a freshly created edge's Onext ring should contain only itself")
	}
	if r.Oprev(e) != e {
		t.Errorf("a freshly created edge's Oprev ring should contain only itself")
	}
}

func TestSpliceMergesOriginRings(t *testing.T) {
	pts := []point.Point{
		point.NewFromInt64(0, 0),
		point.NewFromInt64(1, 0),
		point.NewFromInt64(0, 1),
	}
	r := NewRegistry(pts)
	a := r.CreateEdge(0, 1)
	b := r.CreateEdge(0, 2)

	r.Splice(a, b)
	if r.Onext(a) != b {
		t.Errorf("Onext(a) = %d, want b = %d", r.Onext(a), b)
	}
	if r.Onext(b) != a {
		t.Errorf("Onext(b) = %d, want a = %d", r.Onext(b), a)
	}

	// Splicing again unmerges the ring back into two singletons.
	r.Splice(a, b)
	if r.Onext(a) != a || r.Onext(b) != b {
		t.Errorf("expected splicing twice to restore isolated rings")
	}
}

func TestConnectEdgesAndDeleteEdge(t *testing.T) {
	pts := []point.Point{
		point.NewFromInt64(0, 0),
		point.NewFromInt64(4, 0),
		point.NewFromInt64(0, 4),
	}
	r := NewRegistry(pts)

	ab := r.CreateEdge(0, 1)
	bc := r.CreateEdge(1, 2)
	r.Splice(Sym(ab), bc)

	ca := r.ConnectEdges(bc, ab)
	if !r.Start(ca).Equal(pts[2]) || !r.End(ca).Equal(pts[0]) {
		t.Fatalf("ConnectEdges produced edge (%s -> %s), want (%s -> %s)", r.Start(ca), r.End(ca), pts[2], pts[0])
	}

	// Walking the left face of ab via Lnext should cycle through all three
	// edges and return to ab.
	if got := r.Lnext(r.Lnext(r.Lnext(ab))); got != ab {
		t.Errorf("three Lnext steps from ab should return to ab, got edge %d", got)
	}

	r.DeleteEdge(ca)
	if r.Onext(ca) != ca {
		t.Errorf("expected DeleteEdge to isolate ca's Onext ring")
	}
}
