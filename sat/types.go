package sat

import (
	"sort"
	"strings"

	"github.com/entrenchly/entrench/expr"
)

// Literal is a propositional atom together with a negation flag.
type Literal struct {
	Name    string
	Negated bool
}

// String renders the literal in surface syntax.
func (l Literal) String() string {
	if l.Negated {
		return "~" + l.Name
	}
	return l.Name
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return Literal{Name: l.Name, Negated: !l.Negated}
}

// Clause is a disjunction of literals. An empty Clause is unsatisfiable.
type Clause []Literal

// String renders the clause in surface syntax.
func (c Clause) String() string {
	if len(c) == 0 {
		return "F"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// Satisfied reports whether model satisfies c. A variable missing from
// model satisfies neither a positive nor a negated literal of it; Solve
// always passes total models.
func (c Clause) Satisfied(model Model) bool {
	for _, lit := range c {
		val, ok := model[lit.Name]
		if !ok {
			continue
		}
		if val != lit.Negated {
			return true
		}
	}
	return false
}

// Symbols returns the variable names appearing in c, in clause order with
// duplicates removed.
func (c Clause) Symbols() []string {
	seen := make(map[string]struct{}, len(c))
	out := make([]string, 0, len(c))
	for _, lit := range c {
		if _, ok := seen[lit.Name]; !ok {
			seen[lit.Name] = struct{}{}
			out = append(out, lit.Name)
		}
	}
	return out
}

// Model is a total truth assignment over variable names.
type Model = map[string]bool

// symbolsOf returns the sorted union of free variables across clauses.
func symbolsOf(clauses []Clause) []string {
	seen := make(map[string]struct{})
	for _, c := range clauses {
		for _, lit := range c {
			seen[lit.Name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ClausesFromCNF converts a CNF-shaped expression (as produced by
// expr.ToCNF) into the flat clause representation the solver consumes. It
// fails with ErrNotCNF if e contains anything other than atoms, negated
// atoms, disjunctions of those, and conjunctions of such disjunctions.
func ClausesFromCNF(e expr.Expression) ([]Clause, error) {
	if e == expr.True {
		return nil, nil
	}
	if e == expr.False {
		return []Clause{{}}, nil
	}

	conjuncts := expr.Conjuncts(e)
	clauses := make([]Clause, 0, len(conjuncts))
	for _, conjunct := range conjuncts {
		lits, err := literalsOfClause(conjunct)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, lits)
	}
	return clauses, nil
}

func literalsOfClause(e expr.Expression) (Clause, error) {
	disjuncts := expr.Disjuncts(e)
	lits := make(Clause, 0, len(disjuncts))
	for _, d := range disjuncts {
		lit, err := literalOf(d)
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
	}
	return lits, nil
}

func literalOf(e expr.Expression) (Literal, error) {
	if name, ok := expr.AtomName(e); ok {
		return Literal{Name: name, Negated: false}, nil
	}
	if name, ok := expr.NegatedAtomName(e); ok {
		return Literal{Name: name, Negated: true}, nil
	}
	return Literal{}, ErrNotCNF
}
