// Package sweepline implements the sweep's status structure: the ordered
// set of currently-active left events, keyed by vertical position at the
// sweep abscissa (the SweepLineKey order). It generalizes the teacher's
// Status type — a github.com/emirpasic/gods red-black tree carrying a
// comparator with mutable state (the sweep's current X) — to an exact,
// position-free comparator: two left events are ordered by the sign of
// the orientation predicate between their endpoints, so no "current X"
// needs to be tracked or kept in sync with the sweep.
package sweepline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/exactgeom/planekernel/event"
	"github.com/exactgeom/planekernel/point"
)

// Table is the read-only view into an EventsRegistry's backing tables
// that the SweepLineKey comparator needs.
type Table interface {
	// EventStart returns the lexicographically-smaller endpoint of e's
	// (sub-)segment.
	EventStart(e event.Event) point.Point
	// EventEnd returns the lexicographically-larger endpoint of e's
	// (sub-)segment.
	EventEnd(e event.Event) point.Point
}

type comparator struct {
	table Table
}

// Compare implements github.com/emirpasic/gods/utils.Comparator over
// event.Event keys, following the SweepLineKey order: if both events
// describe the same segment they compare equal; otherwise the orientation
// of one event's endpoints relative to the other places it above or
// below, falling back to lexicographic order for coincident lines.
func (c *comparator) Compare(a, b interface{}) int {
	self, other := a.(event.Event), b.(event.Event)
	if self == other {
		return 0
	}
	selfStart, selfEnd := c.table.EventStart(self), c.table.EventEnd(self)
	otherStart, otherEnd := c.table.EventStart(other), c.table.EventEnd(other)
	if selfStart.Equal(otherStart) && selfEnd.Equal(otherEnd) {
		return 0
	}

	oStart := point.Orient(otherStart, otherEnd, selfStart)
	if oStart != point.Collinear {
		return signOf(oStart)
	}
	oEnd := point.Orient(otherStart, otherEnd, selfEnd)
	if oEnd != point.Collinear {
		return signOf(oEnd)
	}
	// Coincident lines: fall back to lexicographic order of the
	// endpoints (open question in the design notes — this resolves it).
	if c := selfStart.Cmp(otherStart); c != 0 {
		return c
	}
	return selfEnd.Cmp(otherEnd)
}

// signOf maps CounterClockwise (self lies "above" other's directed line)
// to a positive comparison and Clockwise to a negative one.
func signOf(o point.Orientation) int {
	if o == point.CounterClockwise {
		return 1
	}
	return -1
}

// Line is the sweep-line status structure: an ordered set of left events.
type Line struct {
	tree *rbt.Tree
}

// New returns an empty sweep line backed by table.
func New(table Table) *Line {
	cmp := &comparator{table: table}
	return &Line{tree: rbt.NewWith(cmp.Compare)}
}

// Insert adds e to the status structure.
func (l *Line) Insert(e event.Event) {
	l.tree.Put(e, e)
}

// Remove deletes e from the status structure.
func (l *Line) Remove(e event.Event) {
	l.tree.Remove(e)
}

// Find returns an event already present in the structure that compares
// equal to e under the SweepLineKey order, which need not be e itself —
// this is how coincident segments are deduplicated.
func (l *Line) Find(e event.Event) (event.Event, bool) {
	if v, found := l.tree.Get(e); found {
		return v.(event.Event), true
	}
	return 0, false
}

// Above returns the key-adjacent event above e, whether or not e itself
// is a member of the structure.
func (l *Line) Above(e event.Event) (event.Event, bool) {
	if node := l.tree.GetNode(e); node != nil {
		if succ := successor(node); succ != nil {
			return succ.Key.(event.Event), true
		}
		return 0, false
	}
	if node, found := l.tree.Ceiling(e); found {
		return node.Key.(event.Event), true
	}
	return 0, false
}

// Below returns the key-adjacent event below e, whether or not e itself
// is a member of the structure.
func (l *Line) Below(e event.Event) (event.Event, bool) {
	if node := l.tree.GetNode(e); node != nil {
		if pred := predecessor(node); pred != nil {
			return pred.Key.(event.Event), true
		}
		return 0, false
	}
	if node, found := l.tree.Floor(e); found {
		return node.Key.(event.Event), true
	}
	return 0, false
}

// successor finds the in-order successor of a node (the next-largest key).
func successor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	parent := node.Parent
	curr := node
	for parent != nil && curr == parent.Right {
		curr = parent
		parent = parent.Parent
	}
	return parent
}

// predecessor finds the in-order predecessor of a node (the next-smallest
// key).
func predecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	parent := node.Parent
	curr := node
	for parent != nil && curr == parent.Left {
		curr = parent
		parent = parent.Parent
	}
	return parent
}
