package expr

// ToCNF produces a semantically equivalent expression in conjunctive normal
// form: Iff and Implies are eliminated, Not is pushed down to the atoms via
// De Morgan and double-negation elimination, Or is distributed over And,
// and the result is flattened and canonicalised by the same And/Or
// constructors used everywhere else. Clauses containing a literal and its
// negation are tautologies and are dropped from the outer conjunction;
// ToCNF is idempotent.
func ToCNF(e Expression) Expression {
	nnf := toNNF(e, false)
	clauses := toClauses(nnf)

	kept := make([]Expression, 0, len(clauses))
	for _, lits := range clauses {
		if isTautologousClause(lits) {
			continue
		}
		kept = append(kept, Or(lits...))
	}
	return And(kept...)
}

// toNNF pushes negation down to the atoms while eliminating Implies and
// Iff. negate reports whether the surrounding context already negates e.
func toNNF(e Expression, negate bool) Expression {
	switch v := e.(type) {
	case constExpr:
		if negate {
			return constExpr(!v)
		}
		return v
	case atomExpr:
		if negate {
			return notExpr{v}
		}
		return v
	case notExpr:
		return toNNF(v.e, !negate)
	case andExpr:
		children := make([]Expression, len(v))
		for i, c := range v {
			children[i] = toNNF(c, negate)
		}
		if negate {
			return Or(children...)
		}
		return And(children...)
	case orExpr:
		children := make([]Expression, len(v))
		for i, c := range v {
			children[i] = toNNF(c, negate)
		}
		if negate {
			return And(children...)
		}
		return Or(children...)
	case impliesExpr:
		// a -> b  ==  ~a | b
		rewritten := Or(Not(v.a), v.b)
		return toNNF(rewritten, negate)
	case iffExpr:
		// a <-> b  ==  (a -> b) & (b -> a)
		rewritten := And(Implies(v.a, v.b), Implies(v.b, v.a))
		return toNNF(rewritten, negate)
	default:
		panic("expr: unknown expression type in toNNF")
	}
}

// toClauses converts an NNF expression (only Atom, Not(Atom), And, Or, and
// the two constants remain) into a list of clauses, each a list of literals.
// An empty outer list means True (an empty conjunction); a single empty
// clause means False (an empty disjunction).
func toClauses(e Expression) [][]Expression {
	switch v := e.(type) {
	case constExpr:
		if v {
			return [][]Expression{}
		}
		return [][]Expression{{}}
	case atomExpr, notExpr:
		return [][]Expression{{e}}
	case andExpr:
		out := make([][]Expression, 0, len(v))
		for _, c := range v {
			out = append(out, toClauses(c)...)
		}
		return out
	case orExpr:
		acc := toClauses(v[0])
		for _, c := range v[1:] {
			acc = distributeOr(acc, toClauses(c))
		}
		return acc
	default:
		panic("expr: unknown expression type in toClauses")
	}
}

// distributeOr implements (a1 & a2 & ...) | (b1 & b2 & ...) == cross product
// of clauses, one literal set per pair.
func distributeOr(a, b [][]Expression) [][]Expression {
	out := make([][]Expression, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make([]Expression, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}

// isTautologousClause reports whether lits contains both an atom and its
// negation.
func isTautologousClause(lits []Expression) bool {
	positive := make(map[string]struct{})
	negative := make(map[string]struct{})
	for _, lit := range lits {
		switch v := lit.(type) {
		case atomExpr:
			positive[string(v)] = struct{}{}
		case notExpr:
			if a, ok := v.e.(atomExpr); ok {
				negative[string(a)] = struct{}{}
			}
		}
	}
	for name := range positive {
		if _, ok := negative[name]; ok {
			return true
		}
	}
	return false
}
