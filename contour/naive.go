package contour

import "github.com/exactgeom/planekernel/point"

// CountCrossingsNaive counts proper crossings among segments by brute
// force in O(n^2), evaluated exactly rather than with a floating-point
// tolerance. It exists to cross-check the sweep-driven unique reduction in
// tests, the way the teacher's CountIntersectionsNaive cross-checks its
// sweep.
func CountCrossingsNaive(segments []point.Segment) int {
	count := 0
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if Relate(segments[i], segments[j]) == Cross {
				count++
			}
		}
	}
	return count
}
