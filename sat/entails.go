package sat

import "github.com/entrenchly/entrench/expr"

// Entails reports whether kb semantically entails phi, via the deduction
// theorem: kb ⊨ phi iff kb ∪ {¬phi} is unsatisfiable. Because Solve is
// incomplete, a failure to find a model for kb ∪ {¬phi} is treated as
// entailment even though it may only mean the search budget ran out; this
// is the documented imprecision of the decider, not a bug.
func Entails(kb []Clause, phi expr.Expression, s *Solver) (bool, error) {
	negPhi := expr.ToCNF(expr.Not(phi))
	negClauses, err := ClausesFromCNF(negPhi)
	if err != nil {
		return false, err
	}

	combined := make([]Clause, 0, len(kb)+len(negClauses))
	combined = append(combined, kb...)
	combined = append(combined, negClauses...)

	_, ok := s.Solve(combined)
	return !ok, nil
}
