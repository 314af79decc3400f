package event

import "testing"

func TestIsLeft(t *testing.T) {
	cases := []struct {
		e    Event
		want bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{17, false},
	}
	for _, c := range cases {
		if got := IsLeft(c.e); got != c.want {
			t.Errorf("IsLeft(%d) = %v, want %v", c.e, got, c.want)
		}
	}
}

func TestLeftAndRight(t *testing.T) {
	for segmentIndex := 0; segmentIndex < 5; segmentIndex++ {
		left := Left(segmentIndex)
		right := Right(segmentIndex)
		if !IsLeft(left) {
			t.Errorf("Left(%d) = %d, want an even (left) event", segmentIndex, left)
		}
		if IsLeft(right) {
			t.Errorf("Right(%d) = %d, want an odd (right) event", segmentIndex, right)
		}
		if right != left+1 {
			t.Errorf("Right(%d) = %d, want Left(%d)+1 = %d", segmentIndex, right, segmentIndex, left+1)
		}
	}
}
