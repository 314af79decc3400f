// Package rational implements the exact scalar the kernel performs every
// geometric computation over: an arbitrary-precision numerator/denominator
// pair, normalised on every construction so that comparisons and sign
// checks never fall back to floating-point.
package rational

import (
	"errors"
	"math/big"
)

// ErrUndefinedDivision is returned when a rational would be constructed
// with a zero denominator.
var ErrUndefinedDivision = errors.New("rational: zero denominator")

// ErrInvalidScalar is returned when an external value has no exact
// rational representation (NaN or an infinity).
var ErrInvalidScalar = errors.New("rational: invalid scalar")

// Rat is an exact rational number, kept gcd-reduced with a strictly
// positive denominator at all times. The zero value is not a valid Rat;
// use Zero, NewFromInt64 or NewFromBigInts.
type Rat struct {
	num *big.Int
	den *big.Int
}

// Zero returns the exact rational 0/1.
func Zero() Rat {
	return Rat{num: big.NewInt(0), den: big.NewInt(1)}
}

// NewFromInt64 builds the exact rational n/1.
func NewFromInt64(n int64) Rat {
	return Rat{num: big.NewInt(n), den: big.NewInt(1)}
}

// NewFromBigInts builds num/den, normalising the sign into the numerator
// and reducing by the gcd. It returns ErrUndefinedDivision if den is zero.
func NewFromBigInts(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrUndefinedDivision
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rat{num: n, den: d}, nil
}

// NewFromFloat64 builds the exact rational equal to f. It returns
// ErrInvalidScalar if f is NaN or infinite, since those have no rational
// value.
func NewFromFloat64(f float64) (Rat, error) {
	br := new(big.Rat)
	if br.SetFloat64(f) == nil {
		return Rat{}, ErrInvalidScalar
	}
	return NewFromBigInts(br.Num(), br.Denom())
}

func (r Rat) normalized() Rat {
	if r.num == nil {
		return Zero()
	}
	return r
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	r, other = r.normalized(), other.normalized()
	num := new(big.Int).Add(new(big.Int).Mul(r.num, other.den), new(big.Int).Mul(other.num, r.den))
	den := new(big.Int).Mul(r.den, other.den)
	result, _ := NewFromBigInts(num, den)
	return result
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return r.Add(other.Neg())
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	r = r.normalized()
	return Rat{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	r, other = r.normalized(), other.normalized()
	num := new(big.Int).Mul(r.num, other.num)
	den := new(big.Int).Mul(r.den, other.den)
	result, _ := NewFromBigInts(num, den)
	return result
}

// Quo returns r / other. It returns ErrUndefinedDivision if other is zero.
func (r Rat) Quo(other Rat) (Rat, error) {
	r, other = r.normalized(), other.normalized()
	if other.Sign() == 0 {
		return Rat{}, ErrUndefinedDivision
	}
	num := new(big.Int).Mul(r.num, other.den)
	den := new(big.Int).Mul(r.den, other.num)
	return NewFromBigInts(num, den)
}

// Sign returns -1, 0 or 1 according to the sign of r.
func (r Rat) Sign() int {
	r = r.normalized()
	return r.num.Sign()
}

// Cmp compares r and other, returning -1, 0 or 1.
func (r Rat) Cmp(other Rat) int {
	r, other = r.normalized(), other.normalized()
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs)
}

// Equal reports whether r and other denote the same rational value.
func (r Rat) Equal(other Rat) bool {
	return r.Cmp(other) == 0
}

// String renders the rational as "num/den" (den omitted when 1), mainly
// for diagnostics and test failure messages.
func (r Rat) String() string {
	r = r.normalized()
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
