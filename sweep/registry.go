// Package sweep implements the Bentley-Ottmann state machine: the registry
// of events, endpoints and opposites driven by an events queue and a sweep
// line, generalized to exact rational arithmetic and to two consumption
// modes (the full event stream, and a deduplicated one for coincident
// segments). It is grounded on the teacher's CountIntersections loop in
// benott.go, restructured from a one-shot counting pass into a lazy
// producer so that contour validation and segment unification can both
// drive it to exhaustion while observing different things.
package sweep

import (
	"github.com/exactgeom/planekernel/event"
	"github.com/exactgeom/planekernel/eventqueue"
	"github.com/exactgeom/planekernel/internal/assert"
	"github.com/exactgeom/planekernel/internal/diagnostics"
	"github.com/exactgeom/planekernel/point"
	"github.com/exactgeom/planekernel/sweepline"
)

// Registry owns every table the sweep reads and mutates: the append-only
// endpoints/opposites/segmentIDs tables, the collinear-equivalence
// union-find, the events queue and the sweep line.
type Registry struct {
	endpoints  []point.Point
	opposites  []event.Event
	segmentIDs []int

	// minCollinearSegmentIDs is the union-find forest over original input
	// segment indices: two segments are collinear-equivalent iff their
	// root ids (via collinearRoot) agree.
	minCollinearSegmentIDs []int

	queue *eventqueue.Queue
	line  *sweepline.Line

	mode              Mode
	adjacencyObserver func(below, above event.Event)
}

// New builds a registry seeded from segments and immediately pushes every
// initial endpoint event into the queue, per construction step 2.
func New(segments []point.Segment, opts ...Option) *Registry {
	n := len(segments)
	cfg := config{mode: Standard, capacityHint: 2 * n}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacityHint < 2*n {
		cfg.capacityHint = 2 * n
	}

	r := &Registry{
		endpoints:              make([]point.Point, 0, cfg.capacityHint),
		opposites:              make([]event.Event, 0, cfg.capacityHint),
		segmentIDs:             make([]int, n, cfg.capacityHint/2),
		minCollinearSegmentIDs: make([]int, n, cfg.capacityHint/2),
		mode:                   cfg.mode,
		adjacencyObserver:      cfg.adjacencyObserver,
	}
	for i := range r.segmentIDs {
		r.segmentIDs[i] = i
		r.minCollinearSegmentIDs[i] = i
	}
	r.queue = eventqueue.New(r, cfg.capacityHint)
	r.line = sweepline.New(r)

	for i, seg := range segments {
		start, end := point.ToSortedPair(seg.Start, seg.End)
		left, right := event.Left(i), event.Right(i)
		r.endpoints = append(r.endpoints, start, end)
		r.opposites = append(r.opposites, right, left)
		r.queue.PushEvent(left)
		r.queue.PushEvent(right)
	}
	return r
}

// Endpoint implements eventqueue.Table.
func (r *Registry) Endpoint(e event.Event) point.Point { return r.endpoints[e] }

// Opposite implements eventqueue.Table.
func (r *Registry) Opposite(e event.Event) event.Event { return r.opposites[e] }

// EventStart implements sweepline.Table and returns e's own endpoint: the
// lexicographically smaller endpoint of its (sub-)segment if e is a left
// event, the larger one if e is a right event.
func (r *Registry) EventStart(e event.Event) point.Point { return r.endpoints[e] }

// EventEnd implements sweepline.Table and returns the endpoint of e's
// opposite event: the lexicographically larger endpoint of its
// (sub-)segment if e is a left event, the smaller one if e is a right
// event.
func (r *Registry) EventEnd(e event.Event) point.Point { return r.endpoints[r.opposites[e]] }

// SegmentID returns the originating input-segment index of e's left event.
func (r *Registry) SegmentID(e event.Event) int {
	if !event.IsLeft(e) {
		e = r.opposites[e]
	}
	return r.toLeftEventSegmentID(e)
}

func (r *Registry) toLeftEventSegmentID(e event.Event) int {
	assert.Invariant(event.IsLeft(e), "sweep: toLeftEventSegmentID called on a right event")
	return r.segmentIDs[e/2]
}

// CollinearRoot returns the representative id of segmentID's
// collinear-equivalence class. Two original input segments are
// collinear-equivalent iff CollinearRoot agrees for both.
func (r *Registry) CollinearRoot(segmentID int) int {
	root := r.minCollinearSegmentIDs[segmentID]
	if parent := r.minCollinearSegmentIDs[root]; parent != root {
		root = parent
	}
	return root
}

// Next advances the sweep by one emitted event, or reports (0, false) once
// the queue is exhausted. It loops internally past events suppressed by
// Unique mode, so every successful call returns an event the caller should
// act on.
func (r *Registry) Next() (event.Event, bool) {
	for {
		e, ok := r.queue.PopEvent()
		if !ok {
			return 0, false
		}

		if event.IsLeft(e) {
			if existing, found := r.line.Find(e); found {
				r.mergeEqualSegmentEvents(e, existing)
				if r.mode == Unique {
					continue
				}
				return e, true
			}
			r.line.Insert(e)
			if below, ok := r.line.Below(e); ok {
				r.detectIntersection(below, e)
			}
			if above, ok := r.line.Above(e); ok {
				r.detectIntersection(e, above)
			}
			return e, true
		}

		left := r.opposites[e]
		if existing, found := r.line.Find(left); found {
			above, hasAbove := r.line.Above(existing)
			below, hasBelow := r.line.Below(existing)
			r.line.Remove(existing)
			if hasAbove && hasBelow {
				r.detectIntersection(below, above)
			}
			if existing != left {
				r.mergeEqualSegmentEvents(left, existing)
			}
			return e, true
		}
		if r.mode == Unique {
			continue
		}
		return e, true
	}
}

// detectIntersection tests the two sweep-line-adjacent left events below
// and e for the seven cases of §4.5, subdividing as needed so that no two
// registered segments ever properly cross or partially overlap afterward.
func (r *Registry) detectIntersection(below, e event.Event) {
	assert.Invariant(below != e, "sweep: detectIntersection called with identical events")
	if r.adjacencyObserver != nil {
		r.adjacencyObserver(below, e)
	}

	eStart, eEnd := r.EventStart(e), r.EventEnd(e)
	belowStart, belowEnd := r.EventStart(below), r.EventEnd(below)

	eStartOrient := point.Orient(belowEnd, belowStart, eStart)
	eEndOrient := point.Orient(belowEnd, belowStart, eEnd)

	if eStartOrient != point.Collinear && eEndOrient != point.Collinear {
		if eStartOrient == eEndOrient {
			return
		}
		belowStartOrient := point.Orient(eStart, eEnd, belowStart)
		belowEndOrient := point.Orient(eStart, eEnd, belowEnd)
		switch {
		case belowStartOrient != point.Collinear && belowEndOrient != point.Collinear:
			if belowStartOrient == belowEndOrient {
				return
			}
			p := point.IntersectCrossingSegments(eStart, eEnd, belowStart, belowEnd)
			diagnostics.Logf("sweep: crossing at %s between events %d and %d", p, below, e)
			r.divideEventByMidpoint(below, p)
			r.divideEventByMidpointCheckingAbove(e, p)
		case belowStartOrient != point.Collinear:
			if eStart.Less(belowEnd) && belowEnd.Less(eEnd) {
				r.divideEventByMidpointCheckingAbove(e, belowEnd)
			}
		default:
			if eStart.Less(belowStart) && belowStart.Less(eEnd) {
				r.divideEventByMidpointCheckingAbove(e, belowStart)
			}
		}
		return
	}

	if eEndOrient != point.Collinear {
		if belowStart.Less(eStart) && eStart.Less(belowEnd) {
			r.divideEventByMidpoint(below, eStart)
		}
		return
	}
	if eStartOrient != point.Collinear {
		if belowStart.Less(eEnd) && eEnd.Less(belowEnd) {
			r.divideEventByMidpoint(below, eEnd)
		}
		return
	}

	switch {
	case eStart.Equal(belowStart):
		assert.Invariant(!eEnd.Equal(belowEnd), "sweep: coincident segments reached the non-collinear-endpoint case")
		maxEndEvent, minEndEvent := e, below
		if eEnd.Less(belowEnd) {
			maxEndEvent, minEndEvent = below, e
		}
		r.line.Remove(maxEndEvent)
		minEnd := r.EventEnd(minEndEvent)
		_, minEndMaxEndEvent := r.divide(maxEndEvent, minEnd)
		r.queue.PushEvent(minEndMaxEndEvent)
		r.mergeEqualSegmentEvents(e, below)

	case eEnd.Equal(belowEnd):
		maxStartEvent, minStartEvent := e, below
		if eStart.Less(belowStart) {
			maxStartEvent, minStartEvent = below, e
		}
		maxStart := r.EventStart(maxStartEvent)
		maxStartToMinStart, maxStartToEnd := r.divide(minStartEvent, maxStart)
		r.queue.PushEvent(maxStartToMinStart)
		r.mergeEqualSegmentEvents(maxStartEvent, maxStartToEnd)

	case belowStart.Less(eStart) && eStart.Less(belowEnd):
		if eEnd.Less(belowEnd) {
			r.divideEventByMidSegmentEventEndpoints(below, e, eStart, eEnd)
		} else {
			r.divideOverlappingEvents(below, e, eStart, belowEnd)
		}

	case eStart.Less(belowStart) && belowStart.Less(eEnd):
		if belowEnd.Less(eEnd) {
			r.divideEventByMidSegmentEventEndpoints(e, below, belowStart, belowEnd)
		} else {
			r.divideOverlappingEvents(e, below, belowStart, eEnd)
		}
	}
}

// mergeEqualSegmentEvents unions the collinear-equivalence classes of the
// two events' originating segments, writing the smaller class id into both
// class roots and both inputs so the forest never grows beyond two hops.
func (r *Registry) mergeEqualSegmentEvents(first, second event.Event) {
	assert.Invariant(first != second, "sweep: mergeEqualSegmentEvents called with identical events")
	id1 := r.toLeftEventSegmentID(first)
	id2 := r.toLeftEventSegmentID(second)
	root1 := r.CollinearRoot(id1)
	root2 := r.CollinearRoot(id2)
	minRoot := root1
	if root2 < minRoot {
		minRoot = root2
	}
	r.minCollinearSegmentIDs[root1] = minRoot
	r.minCollinearSegmentIDs[root2] = minRoot
	r.minCollinearSegmentIDs[id1] = minRoot
	r.minCollinearSegmentIDs[id2] = minRoot
}

// divide allocates two new events at the next unused index pair: one
// terminating the (start, midPoint) sub-segment where e used to terminate
// at its old end, and one originating the (midPoint, end) sub-segment
// where e's old opposite used to originate. It returns
// (midPointToStartEvent, midPointToEndEvent).
func (r *Registry) divide(e event.Event, midPoint point.Point) (event.Event, event.Event) {
	assert.Invariant(event.IsLeft(e), "sweep: divide called on a right event")
	oppositeEvent := r.opposites[e]

	midToEnd := event.Event(len(r.endpoints))
	r.segmentIDs = append(r.segmentIDs, r.toLeftEventSegmentID(e))
	r.endpoints = append(r.endpoints, midPoint)
	r.opposites = append(r.opposites, oppositeEvent)
	r.opposites[oppositeEvent] = midToEnd

	midToStart := event.Event(len(r.endpoints))
	r.endpoints = append(r.endpoints, midPoint)
	r.opposites = append(r.opposites, e)
	r.opposites[e] = midToStart

	return midToStart, midToEnd
}

// divideEventByMidpoint splits e at p and pushes both resulting events.
func (r *Registry) divideEventByMidpoint(e event.Event, p point.Point) {
	start, end := r.divide(e, p)
	r.queue.PushEvent(start)
	r.queue.PushEvent(end)
}

// divideEventByMidpointCheckingAbove splits e at p, first checking whether
// e's current sweep-line-above neighbour shares e's start and ends exactly
// at p: if so that neighbour is a coincident prefix sharing the same
// (start, p) sub-segment, so it is removed from the line and merged with
// the new (start, p) piece instead of being left to intersect it later.
func (r *Registry) divideEventByMidpointCheckingAbove(e event.Event, p point.Point) {
	if above, ok := r.line.Above(e); ok {
		if r.EventStart(above).Equal(r.EventStart(e)) && r.EventEnd(above).Equal(p) {
			r.line.Remove(above)
			r.divideEventByMidpoint(e, p)
			r.mergeEqualSegmentEvents(e, above)
			return
		}
	}
	r.divideEventByMidpoint(e, p)
}

// divideOverlappingEvents handles case 7: two collinear segments overlap
// without either containing the other. maxStartEvent is split at minEnd
// (the shared interior stretch's far end), minStartEvent is split at
// maxStart (the shared interior stretch's near end), and the two resulting
// equal-length overlap pieces are merged.
func (r *Registry) divideOverlappingEvents(minStartEvent, maxStartEvent event.Event, maxStart, minEnd point.Point) {
	r.divideEventByMidpoint(maxStartEvent, minEnd)
	maxStartMinStart, maxStartMinEnd := r.divide(minStartEvent, maxStart)
	r.queue.PushEvent(maxStartMinStart)
	r.mergeEqualSegmentEvents(maxStartEvent, maxStartMinEnd)
}

// divideEventByMidSegmentEventEndpoints handles case 6: below strictly
// contains above (or vice versa, with roles swapped by the caller). e is
// split twice, at the contained segment's end and then its start, leaving
// a middle piece exactly matching midSegmentEvent, which is merged with
// it.
func (r *Registry) divideEventByMidSegmentEventEndpoints(e, midSegmentEvent event.Event, midSegmentStart, midSegmentEnd point.Point) {
	r.divideEventByMidpoint(e, midSegmentEnd)
	startToCompositeStart, startToInnerEnd := r.divide(e, midSegmentStart)
	r.queue.PushEvent(startToCompositeStart)
	r.mergeEqualSegmentEvents(midSegmentEvent, startToInnerEnd)
}
