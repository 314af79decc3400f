package sweepline

import (
	"testing"

	"github.com/exactgeom/planekernel/event"
	"github.com/exactgeom/planekernel/point"
)

type fakeTable struct {
	starts, ends []point.Point
}

func (f *fakeTable) EventStart(e event.Event) point.Point { return f.starts[e] }
func (f *fakeTable) EventEnd(e event.Event) point.Point   { return f.ends[e] }

func TestLineOrdersByVerticalPosition(t *testing.T) {
	// Three non-crossing segments, bottom to top.
	table := &fakeTable{
		starts: []point.Point{
			point.NewFromInt64(0, 0),
			point.NewFromInt64(0, 1),
			point.NewFromInt64(0, 2),
		},
		ends: []point.Point{
			point.NewFromInt64(10, 0),
			point.NewFromInt64(10, 1),
			point.NewFromInt64(10, 5),
		},
	}
	bottom, middle, top := event.Event(0), event.Event(1), event.Event(2)

	l := New(table)
	l.Insert(middle)
	l.Insert(bottom)
	l.Insert(top)

	if above, ok := l.Above(bottom); !ok || above != middle {
		t.Errorf("Above(bottom) = (%d, %v), want (%d, true)", above, ok, middle)
	}
	if above, ok := l.Above(middle); !ok || above != top {
		t.Errorf("Above(middle) = (%d, %v), want (%d, true)", above, ok, top)
	}
	if _, ok := l.Above(top); ok {
		t.Errorf("expected no event above the top segment")
	}
	if below, ok := l.Below(top); !ok || below != middle {
		t.Errorf("Below(top) = (%d, %v), want (%d, true)", below, ok, middle)
	}
	if _, ok := l.Below(bottom); ok {
		t.Errorf("expected no event below the bottom segment")
	}
}

func TestLineFindDedupesCoincidentSegments(t *testing.T) {
	table := &fakeTable{
		starts: []point.Point{point.NewFromInt64(0, 0), point.NewFromInt64(0, 0)},
		ends:   []point.Point{point.NewFromInt64(10, 10), point.NewFromInt64(10, 10)},
	}
	first, duplicate := event.Event(0), event.Event(1)

	l := New(table)
	l.Insert(first)

	found, ok := l.Find(duplicate)
	if !ok {
		t.Fatalf("expected a coincident segment to be found")
	}
	if found != first {
		t.Errorf("Find(duplicate) = %d, want %d", found, first)
	}
}

func TestLineRemove(t *testing.T) {
	table := &fakeTable{
		starts: []point.Point{point.NewFromInt64(0, 0), point.NewFromInt64(0, 1)},
		ends:   []point.Point{point.NewFromInt64(10, 0), point.NewFromInt64(10, 1)},
	}
	bottom, top := event.Event(0), event.Event(1)
	l := New(table)
	l.Insert(bottom)
	l.Insert(top)
	l.Remove(top)
	if _, ok := l.Above(bottom); ok {
		t.Errorf("expected no event above bottom after removing top")
	}
}
