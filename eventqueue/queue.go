// Package eventqueue implements the sweep's min-priority queue, keyed by
// the EventsQueueKey order: lexicographic by endpoint, with a well-defined
// tie-break between coincident events. It generalizes the teacher's
// float-keyed heap.Interface event queue (container/heap over endpoint
// values) to index-only keys whose comparator closes over the owning
// registry's endpoint/opposite tables, so pushing and popping never
// copies endpoint data and stays valid across subdivision-triggered
// table growth (see the design notes on key stability).
package eventqueue

import (
	"container/heap"

	"github.com/exactgeom/planekernel/event"
	"github.com/exactgeom/planekernel/point"
)

// Table is the read-only view into an EventsRegistry's backing tables
// that the queue's comparator needs. A Queue never mutates it.
type Table interface {
	// Endpoint returns the point endpoints[e] associated with the raw
	// event index e (the left endpoint if e is left, the right endpoint
	// if e is right).
	Endpoint(e event.Event) point.Point
	// Opposite returns the event paired with e on the same (sub-)segment.
	Opposite(e event.Event) event.Event
}

// compareEvents implements the EventsQueueKey order.
func compareEvents(t Table, a, b event.Event) int {
	if c := t.Endpoint(a).Cmp(t.Endpoint(b)); c != 0 {
		return c
	}
	if event.IsLeft(a) != event.IsLeft(b) {
		// Close before open at the same point: the right event sorts first.
		if event.IsLeft(a) {
			return 1
		}
		return -1
	}
	return t.Endpoint(t.Opposite(a)).Cmp(t.Endpoint(t.Opposite(b)))
}

// Queue is a min-priority queue of pending events, implemented over
// container/heap exactly as the teacher's EventQueue is, but storing bare
// event indices rather than allocated *Event structs.
type Queue struct {
	table  Table
	events []event.Event
}

// New returns an empty queue backed by table. capacityHint preallocates
// the backing slice (the registry passes 2N, per spec's construction
// step).
func New(table Table, capacityHint int) *Queue {
	return &Queue{table: table, events: make([]event.Event, 0, capacityHint)}
}

// Len implements heap.Interface.
func (q *Queue) Len() int { return len(q.events) }

// Less implements heap.Interface.
func (q *Queue) Less(i, j int) bool {
	return compareEvents(q.table, q.events[i], q.events[j]) < 0
}

// Swap implements heap.Interface.
func (q *Queue) Swap(i, j int) { q.events[i], q.events[j] = q.events[j], q.events[i] }

// Push implements heap.Interface. Use [Queue.PushEvent] to enqueue events.
func (q *Queue) Push(x any) {
	q.events = append(q.events, x.(event.Event))
}

// Pop implements heap.Interface. Use [Queue.PopEvent] to dequeue events.
func (q *Queue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[:n-1]
	return item
}

// PushEvent enqueues e under the EventsQueueKey order.
func (q *Queue) PushEvent(e event.Event) {
	heap.Push(q, e)
}

// PopEvent dequeues and returns the minimum event, or (0, false) if the
// queue is empty.
func (q *Queue) PopEvent() (event.Event, bool) {
	if q.Len() == 0 {
		return 0, false
	}
	return heap.Pop(q).(event.Event), true
}
