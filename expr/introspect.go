package expr

// Conjuncts returns the top-level And operands of e, or []Expression{e} if
// e is not an And. Used by the sat package to read a CNF expression's
// clauses without depending on expr's unexported representation.
func Conjuncts(e Expression) []Expression {
	if v, ok := e.(andExpr); ok {
		return append([]Expression(nil), v...)
	}
	return []Expression{e}
}

// Disjuncts returns the top-level Or operands of e, or []Expression{e} if e
// is not an Or.
func Disjuncts(e Expression) []Expression {
	if v, ok := e.(orExpr); ok {
		return append([]Expression(nil), v...)
	}
	return []Expression{e}
}

// AtomName reports the atom name if e is a bare Atom.
func AtomName(e Expression) (string, bool) {
	if v, ok := e.(atomExpr); ok {
		return string(v), true
	}
	return "", false
}

// NegatedAtomName reports the atom name if e is Not(Atom(name)).
func NegatedAtomName(e Expression) (string, bool) {
	if v, ok := e.(notExpr); ok {
		if a, ok := v.e.(atomExpr); ok {
			return string(a), true
		}
	}
	return "", false
}
