package rational

import (
	"math"
	"math/big"
	"testing"
)

func mustNewFromBigInts(t *testing.T, num, den int64) Rat {
	t.Helper()
	r, err := NewFromBigInts(big.NewInt(num), big.NewInt(den))
	if err != nil {
		t.Fatalf("NewFromBigInts(%d, %d): %v", num, den, err)
	}
	return r
}

func TestNewFromBigIntsReducesAndNormalizesSign(t *testing.T) {
	r := mustNewFromBigInts(t, 6, -9)
	want := mustNewFromBigInts(t, -2, 3)
	if !r.Equal(want) {
		t.Errorf("got %s, want %s", r, want)
	}
	if r.String() != "-2/3" {
		t.Errorf("got string %q, want %q", r.String(), "-2/3")
	}
}

func TestNewFromBigIntsZeroDenominator(t *testing.T) {
	if _, err := NewFromBigInts(big.NewInt(1), big.NewInt(0)); err != ErrUndefinedDivision {
		t.Errorf("got %v, want ErrUndefinedDivision", err)
	}
}

func TestArithmetic(t *testing.T) {
	half := mustNewFromBigInts(t, 1, 2)
	third := mustNewFromBigInts(t, 1, 3)

	if got, want := half.Add(third), mustNewFromBigInts(t, 5, 6); !got.Equal(want) {
		t.Errorf("Add: got %s, want %s", got, want)
	}
	if got, want := half.Sub(third), mustNewFromBigInts(t, 1, 6); !got.Equal(want) {
		t.Errorf("Sub: got %s, want %s", got, want)
	}
	if got, want := half.Mul(third), mustNewFromBigInts(t, 1, 6); !got.Equal(want) {
		t.Errorf("Mul: got %s, want %s", got, want)
	}
	quo, err := half.Quo(third)
	if err != nil {
		t.Fatalf("Quo: %v", err)
	}
	if want := mustNewFromBigInts(t, 3, 2); !quo.Equal(want) {
		t.Errorf("Quo: got %s, want %s", quo, want)
	}
}

func TestQuoByZero(t *testing.T) {
	if _, err := NewFromInt64(1).Quo(Zero()); err != ErrUndefinedDivision {
		t.Errorf("got %v, want ErrUndefinedDivision", err)
	}
}

func TestSignAndCmp(t *testing.T) {
	neg := NewFromInt64(-3)
	zero := Zero()
	pos := NewFromInt64(3)

	if neg.Sign() != -1 || zero.Sign() != 0 || pos.Sign() != 1 {
		t.Fatalf("unexpected signs: %d %d %d", neg.Sign(), zero.Sign(), pos.Sign())
	}
	if neg.Cmp(pos) >= 0 {
		t.Errorf("expected neg < pos")
	}
	if pos.Cmp(neg) <= 0 {
		t.Errorf("expected pos > neg")
	}
	if !zero.Equal(NewFromInt64(0)) {
		t.Errorf("expected zero to equal 0")
	}
}

func TestNewFromFloat64(t *testing.T) {
	r, err := NewFromFloat64(0.25)
	if err != nil {
		t.Fatalf("NewFromFloat64(0.25): %v", err)
	}
	if want := mustNewFromBigInts(t, 1, 4); !r.Equal(want) {
		t.Errorf("got %s, want %s", r, want)
	}
}

func TestNewFromFloat64RejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewFromFloat64(f); err != ErrInvalidScalar {
			t.Errorf("NewFromFloat64(%v): got %v, want ErrInvalidScalar", f, err)
		}
	}
}
