package sweep

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/exactgeom/planekernel/point"
)

// generateRandomSegments returns n segments with endpoints drawn uniformly
// from [0, bound), seeded deterministically so benchmark runs are
// reproducible.
func generateRandomSegments(n int, bound int64) []point.Segment {
	rng := rand.New(rand.NewSource(1))
	segments := make([]point.Segment, n)
	for i := range segments {
		x1, y1 := rng.Int63n(bound), rng.Int63n(bound)
		x2, y2 := rng.Int63n(bound), rng.Int63n(bound)
		for x1 == x2 && y1 == y2 {
			x2, y2 = rng.Int63n(bound), rng.Int63n(bound)
		}
		segments[i] = point.NewSegment(point.NewFromInt64(x1, y1), point.NewFromInt64(x2, y2))
	}
	return segments
}

// generateGridSegments returns the rows and columns of an n x n grid, a
// dense worst case for sweep-line adjacency churn.
func generateGridSegments(n int) []point.Segment {
	segments := make([]point.Segment, 0, 2*n)
	for i := int64(0); i < int64(n); i++ {
		segments = append(segments, point.NewSegment(point.NewFromInt64(i, 0), point.NewFromInt64(i, int64(n)-1)))
		segments = append(segments, point.NewSegment(point.NewFromInt64(0, i), point.NewFromInt64(int64(n)-1, i)))
	}
	return segments
}

func BenchmarkRegistryRandomSegments(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		segments := generateRandomSegments(n, 1000)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := New(segments)
				for {
					if _, ok := r.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

func BenchmarkRegistryGridSegments(b *testing.B) {
	for _, n := range []int{10, 25, 50} {
		segments := generateGridSegments(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := New(segments)
				for {
					if _, ok := r.Next(); !ok {
						break
					}
				}
			}
		})
	}
}
