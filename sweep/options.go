package sweep

import "github.com/exactgeom/planekernel/event"

// Mode selects how a Registry's emitted event stream treats coincident
// left events (two events whose start and end endpoints both match).
type Mode int

const (
	// Standard emits every left and right event exactly once, including
	// coincident duplicates; callers that need full provenance (e.g.
	// contour validation) want this mode.
	Standard Mode = iota
	// Unique suppresses a coincident left event and its matching right
	// event once their segment ids have been merged, so the emitted
	// stream carries each maximal sub-segment exactly once.
	Unique
)

type config struct {
	mode              Mode
	capacityHint      int
	adjacencyObserver func(below, above event.Event)
}

// Option configures a Registry at construction time.
type Option func(*config)

// WithMode sets the dedup mode. The default is Standard.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithCapacityHint sets the preallocated capacity of the registry's
// endpoint and opposite tables and of its event queue (the per-segment
// tables get half of it). The default is 2*len(segments); a smaller value,
// zero included, is raised to that default.
func WithCapacityHint(n int) Option {
	return func(c *config) { c.capacityHint = n }
}

// WithAdjacencyObserver registers a callback invoked with every
// (below, above) pair the registry tests for intersection, in the order
// the sweep discovers them. Used by contour validation to classify every
// pair of segments the sweep ever found adjacent, independent of what
// subdivision the intersection test performs.
func WithAdjacencyObserver(f func(below, above event.Event)) Option {
	return func(c *config) { c.adjacencyObserver = f }
}
