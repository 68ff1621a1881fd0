package belief

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidOrder is returned when an Order literal cannot be parsed.
var ErrInvalidOrder = errors.New("belief: invalid order literal")

// Order is an exact entrenchment degree. It wraps *big.Rat rather than a
// float so that the equality and strict-ordering comparisons expand and
// retract depend on never suffer the spurious ties or flipped inequalities
// floating point would introduce; no rational/decimal library appears
// anywhere in the example corpus, so this is the one part of the belief
// package grounded on the standard library instead of a third-party type.
type Order struct {
	r *big.Rat
}

// OrderFromString parses a decimal or rational literal such as "0.4",
// "2/5" or "1". It mirrors the source's acceptance of strings and decimals
// interchangeably.
func OrderFromString(s string) (Order, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(s); !ok {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
	return Order{r: r}, nil
}

// OrderFromInt64 builds the exact rational num/den.
func OrderFromInt64(num, den int64) (Order, error) {
	if den == 0 {
		return Order{}, fmt.Errorf("%w: zero denominator", ErrInvalidOrder)
	}
	return Order{r: big.NewRat(num, den)}, nil
}

// OrderZero is the entrenchment floor.
func OrderZero() Order { return Order{r: big.NewRat(0, 1)} }

// OrderOne is the entrenchment ceiling; Expand assigns it to every
// tautology.
func OrderOne() Order { return Order{r: big.NewRat(1, 1)} }

// Cmp returns -1, 0 or +1 as o is less than, equal to, or greater than
// other, by exact rational comparison.
func (o Order) Cmp(other Order) int {
	return o.r.Cmp(other.r)
}

// Float64 returns an approximate floating-point view, for display only;
// never compare on it.
func (o Order) Float64() float64 {
	f, _ := o.r.Float64()
	return f
}

// String renders the exact rational value, e.g. "2/5" or "1".
func (o Order) String() string {
	return o.r.RatString()
}

func (o Order) inRange() bool {
	return o.Cmp(OrderZero()) >= 0 && o.Cmp(OrderOne()) <= 0
}
