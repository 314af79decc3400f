// Package contour implements the two engines built on top of the sweep:
// reducing an arbitrary segment union to its maximal non-overlapping
// sub-segments, and validating that a cyclic chain of segments forms a
// simple polygon boundary.
package contour

import (
	"github.com/exactgeom/planekernel/event"
	"github.com/exactgeom/planekernel/point"
	"github.com/exactgeom/planekernel/sweep"
)

// ToUniqueNonCrossingOrOverlappingSegments drives a Unique-mode sweep to
// exhaustion and emits one segment per maximal sub-segment of the input
// union: coincident and overlapping input segments collapse into their
// shared pieces, and every crossing is split at the crossing point.
func ToUniqueNonCrossingOrOverlappingSegments(segments []point.Segment) []point.Segment {
	registry := sweep.New(segments, sweep.WithMode(sweep.Unique))
	result := make([]point.Segment, 0, len(segments))
	for {
		e, ok := registry.Next()
		if !ok {
			return result
		}
		if event.IsLeft(e) {
			continue
		}
		result = append(result, point.NewSegment(registry.EventStart(e), registry.EventEnd(e)))
	}
}

// IsContourValid reports whether segments, taken as a cyclically-ordered
// chain, forms a simple polygon boundary: at least three non-degenerate
// segments, where the only interactions the sweep ever observes between
// distinct input segments are endpoint touches between segments that are
// consecutive in the cyclic order, with exactly one such touch per
// segment (equivalently, per vertex).
func IsContourValid(segments []point.Segment) bool {
	n := len(segments)
	if n < 3 {
		return false
	}
	for _, s := range segments {
		if s.Start.Equal(s.End) {
			return false
		}
	}

	valid := true
	seen := make(map[[2]int]bool)
	touches := 0

	var registry *sweep.Registry
	observe := func(below, above event.Event) {
		if !valid {
			return
		}
		i, j := registry.SegmentID(below), registry.SegmentID(above)
		if i == j {
			return
		}
		if i > j {
			i, j = j, i
		}
		if seen[[2]int{i, j}] {
			return
		}

		rel := Relate(segments[i], segments[j])
		if rel == Disjoint {
			return
		}
		if rel != Touch || !sharesVertex(segments[i], segments[j]) || !consecutive(i, j, n) {
			valid = false
			return
		}
		seen[[2]int{i, j}] = true
		touches++
	}
	registry = sweep.New(segments, sweep.WithAdjacencyObserver(observe))

	for valid {
		if _, ok := registry.Next(); !ok {
			break
		}
	}
	return valid && touches == n
}

// consecutive reports whether segment indices i and j are adjacent in the
// cyclic order 0, 1, ..., n-1, 0.
func consecutive(i, j, n int) bool {
	diff := j - i
	return diff == 1 || diff == n-1
}
