package sat

import (
	"math/rand"
	"sort"
)

// Solver is a WalkSAT decider. The zero value is not usable; build one with
// NewSolver.
type Solver struct {
	p        float64
	maxFlips int
	rng      *rand.Rand
}

// Option configures a Solver.
type Option func(*Solver)

// WithFlipProbability overrides the default flip probability (0.5): the
// chance that an unsatisfied clause's repair symbol is chosen uniformly at
// random rather than greedily.
func WithFlipProbability(p float64) Option {
	return func(s *Solver) { s.p = p }
}

// WithMaxFlips overrides the default flip budget (1000).
func WithMaxFlips(k int) Option {
	return func(s *Solver) { s.maxFlips = k }
}

// WithRand injects the random source. Tests that need reproducible runs
// should always supply one built from a fixed seed, e.g.
// rand.New(rand.NewSource(42)); the default is a private source seeded
// with 1.
func WithRand(r *rand.Rand) Option {
	return func(s *Solver) { s.rng = r }
}

// NewSolver builds a Solver with the WalkSAT defaults p=0.5, K=1000,
// overridden by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		p:        0.5,
		maxFlips: 1000,
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches for a model satisfying every clause. It returns (model,
// true) on success and (nil, false) if no model was found within the flip
// budget — WalkSAT is incomplete, so this does not prove unsatisfiability.
func (s *Solver) Solve(clauses []Clause) (Model, bool) {
	symbols := symbolsOf(clauses)

	if len(symbols) == 0 {
		for _, c := range clauses {
			if len(c) == 0 {
				return nil, false
			}
		}
		return Model{}, true
	}

	model := make(Model, len(symbols))
	for _, sym := range symbols {
		model[sym] = s.rng.Intn(2) == 1
	}

	for flip := 0; flip < s.maxFlips; flip++ {
		unsatisfied := unsatisfiedClauses(clauses, model)
		if len(unsatisfied) == 0 {
			return model, true
		}

		target := unsatisfied[s.rng.Intn(len(unsatisfied))]
		syms := target.Symbols()

		var choice string
		if s.rng.Float64() < s.p {
			choice = syms[s.rng.Intn(len(syms))]
		} else {
			choice = bestFlip(clauses, model, syms)
		}
		model[choice] = !model[choice]
	}

	if len(unsatisfiedClauses(clauses, model)) == 0 {
		return model, true
	}
	return nil, false
}

func unsatisfiedClauses(clauses []Clause, model Model) []Clause {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		if !c.Satisfied(model) {
			out = append(out, c)
		}
	}
	return out
}

// bestFlip picks the symbol among candidates whose flip maximises the
// number of satisfied clauses, breaking ties by canonical (sorted) name.
func bestFlip(clauses []Clause, model Model, candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := sorted[0]
	bestCount := -1
	for _, sym := range sorted {
		model[sym] = !model[sym]
		count := countSatisfied(clauses, model)
		model[sym] = !model[sym]
		if count > bestCount {
			bestCount = count
			best = sym
		}
	}
	return best
}

func countSatisfied(clauses []Clause, model Model) int {
	count := 0
	for _, c := range clauses {
		if c.Satisfied(model) {
			count++
		}
	}
	return count
}
