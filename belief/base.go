package belief

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/entrenchly/entrench/expr"
	"github.com/entrenchly/entrench/sat"
)

// BeliefBase is an entrenchment-ordered store of beliefs. The zero value is
// not usable; build one with NewBeliefBase.
type BeliefBase struct {
	pq     beliefPQ
	solver *sat.Solver
}

// BaseOption configures a BeliefBase.
type BaseOption func(*BeliefBase)

// WithSolver overrides the default SAT decider used for ask, expand,
// retract and revise.
func WithSolver(s *sat.Solver) BaseOption {
	return func(b *BeliefBase) { b.solver = s }
}

// NewBeliefBase builds an empty base, defaulting to a freshly constructed
// sat.Solver unless WithSolver overrides it.
func NewBeliefBase(opts ...BaseOption) *BeliefBase {
	b := &BeliefBase{solver: sat.NewSolver()}
	heap.Init(&b.pq)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tell inserts belief without any consistency or order-maintenance
// reasoning beyond preserving the heap invariant. Intended for bootstrap
// and for internal use by Expand.
func (b *BeliefBase) Tell(belief *Belief) {
	heap.Push(&b.pq, belief)
}

// Clauses returns the flat list of clauses extracted from every belief in
// the base, used to feed the SAT decider.
func (b *BeliefBase) Clauses() []sat.Clause {
	out := make([]sat.Clause, 0, len(b.pq))
	for _, bel := range b.pq {
		clauses, err := sat.ClausesFromCNF(bel.Expr)
		if err != nil {
			panic(fmt.Sprintf("belief: stored belief is not CNF: %v", err))
		}
		out = append(out, clauses...)
	}
	return out
}

// Ask reports whether the base entails phi.
func (b *BeliefBase) Ask(phi expr.Expression) (bool, error) {
	return sat.Entails(b.Clauses(), phi, b.solver)
}

// Beliefs returns a snapshot of the base's beliefs in non-increasing Order.
func (b *BeliefBase) Beliefs() []*Belief {
	sorted := append([]*Belief(nil), []*Belief(b.pq)...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order.Cmp(sorted[j].Order) > 0
	})
	return sorted
}

// String lists the beliefs in entrenchment order, one per line.
func (b *BeliefBase) String() string {
	var sb strings.Builder
	for _, bel := range b.Beliefs() {
		sb.WriteString(bel.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// isTautology reports whether phi holds under the empty context, i.e. is a
// classical tautology, by delegating to the solver's entailment helper with
// an empty knowledge base.
func isTautology(phi expr.Expression, solver *sat.Solver) (bool, error) {
	return sat.Entails(nil, phi, solver)
}

type snapshotItem struct {
	expr  expr.Expression
	order Order
}

// snapshotSorted captures the base's (expr, order) pairs in non-increasing
// order, immune to later mutation of the live beliefs.
func (b *BeliefBase) snapshotSorted() []snapshotItem {
	beliefs := b.Beliefs()
	out := make([]snapshotItem, len(beliefs))
	for i, bel := range beliefs {
		out[i] = snapshotItem{expr: bel.Expr, order: bel.Order}
	}
	return out
}

// MaxDegree returns the largest order d such that the beliefs with
// Order >= d entail phi: the entrenchment of phi in the base.
func (b *BeliefBase) MaxDegree(phi expr.Expression) (Order, error) {
	return maxDegreeOverSnapshot(b.snapshotSorted(), phi, b.solver)
}

func maxDegreeOverSnapshot(items []snapshotItem, phi expr.Expression, solver *sat.Solver) (Order, error) {
	isTaut, err := isTautology(phi, solver)
	if err != nil {
		return Order{}, err
	}
	if isTaut {
		return OrderOne(), nil
	}
	if len(items) == 0 {
		return OrderZero(), nil
	}

	var accumulated []sat.Clause
	i := 0
	for i < len(items) {
		groupOrder := items[i].order
		for i < len(items) && items[i].order.Cmp(groupOrder) == 0 {
			clauses, err := sat.ClausesFromCNF(items[i].expr)
			if err != nil {
				return Order{}, err
			}
			accumulated = append(accumulated, clauses...)
			i++
		}
		entailed, err := sat.Entails(accumulated, phi, solver)
		if err != nil {
			return Order{}, err
		}
		if entailed {
			return groupOrder, nil
		}
	}
	return OrderZero(), nil
}

// Expand adds newBelief to the base, lifting or capping the order of
// existing beliefs at or below its order per epistemic-entrenchment
// semantics. It fails with ErrContradictoryBelief if the base already
// entails the negation of newBelief.Expr; the base is left unchanged in
// that case.
func (b *BeliefBase) Expand(newBelief *Belief) error {
	isTaut, err := isTautology(newBelief.Expr, b.solver)
	if err != nil {
		return err
	}
	if !isTaut {
		contradicted, err := b.Ask(expr.Not(newBelief.Expr))
		if err != nil {
			return err
		}
		if contradicted {
			return ErrContradictoryBelief
		}
	}
	if isTaut {
		newBelief.Order = OrderOne()
		b.Tell(newBelief)
		return nil
	}

	snapshot := b.snapshotSorted()
	type update struct {
		belief *Belief
		order  Order
	}
	var updates []update
	for _, existing := range []*Belief(b.pq) {
		if existing.Order.Cmp(newBelief.Order) > 0 {
			continue
		}
		implication := expr.Implies(existing.Expr, newBelief.Expr)
		d, err := maxDegreeOverSnapshot(snapshot, implication, b.solver)
		if err != nil {
			return err
		}
		equivalent, err := isTautology(expr.Iff(existing.Expr, newBelief.Expr), b.solver)
		if err != nil {
			return err
		}
		if equivalent || d.Cmp(newBelief.Order) > 0 {
			updates = append(updates, update{existing, newBelief.Order})
		} else {
			updates = append(updates, update{existing, d})
		}
	}
	for _, u := range updates {
		u.belief.Order = u.order
	}
	heap.Init(&b.pq)
	b.Tell(newBelief)
	return nil
}

// removeEqual drops every belief whose expression structurally equals
// target.
func (b *BeliefBase) removeEqual(target expr.Expression) {
	kept := make(beliefPQ, 0, len(b.pq))
	for _, bel := range b.pq {
		if !expr.Equal(bel.Expr, target) {
			kept = append(kept, bel)
		}
	}
	b.pq = kept
	heap.Init(&b.pq)
}

// popWeakest removes and returns the lowest-Order belief in the base, or
// nil if the base is empty.
func (b *BeliefBase) popWeakest() *Belief {
	if len(b.pq) == 0 {
		return nil
	}
	idx := 0
	for i := 1; i < len(b.pq); i++ {
		if b.pq[i].Order.Cmp(b.pq[idx].Order) < 0 {
			idx = i
		}
	}
	return heap.Remove(&b.pq, idx).(*Belief)
}

// Retract contracts the base so that phi is no longer entailed, using
// entrenchment-ordered partial-meet contraction: every belief structurally
// equal to phi is removed outright, then the weakest remaining beliefs are
// removed one at a time, re-checking entailment after each, until phi is no
// longer entailed or the base is empty. If phi is a tautology it can never
// stop being entailed, so Retract leaves the base as-is after the
// structural-equality pass.
func (b *BeliefBase) Retract(phi expr.Expression) error {
	b.removeEqual(expr.ToCNF(phi))

	isTaut, err := isTautology(phi, b.solver)
	if err != nil {
		return err
	}
	if isTaut {
		return nil
	}

	for {
		entailed, err := b.Ask(phi)
		if err != nil {
			return err
		}
		if !entailed {
			return nil
		}
		if b.popWeakest() == nil {
			return nil
		}
	}
}

// Revise implements Levi's identity: contract the base to be consistent
// with newBelief.Expr, then expand with it.
func (b *BeliefBase) Revise(newBelief *Belief) error {
	if err := b.Retract(expr.Not(newBelief.Expr)); err != nil {
		return err
	}
	return b.Expand(newBelief)
}
