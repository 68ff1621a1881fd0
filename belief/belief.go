package belief

import (
	"fmt"

	"github.com/entrenchly/entrench/expr"
)

// Belief is a CNF expression tagged with an entrenchment Order. The base
// may raise or lower Order during Expand (a tautology is set to 1), but
// never mutates Expr.
type Belief struct {
	Expr  expr.Expression
	Order Order
}

// NewBelief builds a Belief, converting e to CNF. It fails with
// ErrOutOfRange if order is outside [0,1].
func NewBelief(e expr.Expression, order Order) (*Belief, error) {
	if !order.inRange() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, order)
	}
	return &Belief{Expr: expr.ToCNF(e), Order: order}, nil
}

// String renders the belief as "<expr> @ <order>".
func (b *Belief) String() string {
	return fmt.Sprintf("%s @ %s", b.Expr.String(), b.Order.String())
}
