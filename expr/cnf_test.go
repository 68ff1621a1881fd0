package expr_test

import (
	"testing"

	"github.com/entrenchly/entrench/expr"
	"github.com/google/go-cmp/cmp"
)

func TestToCNFIdempotent(t *testing.T) {
	a, b, c := expr.NewAtom("A"), expr.NewAtom("B"), expr.NewAtom("C")
	cases := []expr.Expression{
		expr.Implies(a, b),
		expr.Iff(a, b),
		expr.Or(expr.And(a, b), c),
		expr.Not(expr.And(a, expr.Or(b, c))),
		expr.Implies(expr.And(a, b), expr.Iff(b, c)),
	}

	for _, e := range cases {
		once := expr.ToCNF(e)
		twice := expr.ToCNF(once)
		if diff := cmp.Diff(once.String(), twice.String()); diff != "" {
			t.Errorf("ToCNF not idempotent for %s (-once +twice):\n%s", e, diff)
		}
	}
}

func TestToCNFEliminatesImplies(t *testing.T) {
	a, b := expr.NewAtom("A"), expr.NewAtom("B")
	got := expr.ToCNF(expr.Implies(a, b))
	want := expr.Or(expr.Not(a), b)
	if !expr.Equal(got, want) {
		t.Fatalf("to_cnf(A -> B) = %s, want %s", got, want)
	}
}

func TestToCNFEliminatesIff(t *testing.T) {
	a, b := expr.NewAtom("A"), expr.NewAtom("B")
	got := expr.ToCNF(expr.Iff(a, b))
	want := expr.And(expr.Or(expr.Not(a), b), expr.Or(expr.Not(b), a))
	if !expr.Equal(got, want) {
		t.Fatalf("to_cnf(A <-> B) = %s, want %s", got, want)
	}
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	a, b, c := expr.NewAtom("A"), expr.NewAtom("B"), expr.NewAtom("C")
	got := expr.ToCNF(expr.Or(expr.And(a, b), c))
	want := expr.And(expr.Or(a, c), expr.Or(b, c))
	if !expr.Equal(got, want) {
		t.Fatalf("to_cnf((A&B)|C) = %s, want %s", got, want)
	}
}

func TestToCNFDropsTautologousClause(t *testing.T) {
	a, b := expr.NewAtom("A"), expr.NewAtom("B")
	got := expr.ToCNF(expr.Or(a, expr.Not(a), b))
	if got != expr.True {
		t.Fatalf("clause containing a literal and its negation should collapse to True, got %s", got)
	}
}

func TestToCNFEmptyAndIsTrue(t *testing.T) {
	if got := expr.ToCNF(expr.True); got != expr.True {
		t.Fatalf("to_cnf(True) = %s, want True", got)
	}
}

func TestToCNFCanonicalOrderingMatchesSpecExamples(t *testing.T) {
	a, b, c := expr.NewAtom("A"), expr.NewAtom("B"), expr.NewAtom("C")

	if !expr.Equal(expr.ToCNF(expr.And(a, b)), expr.ToCNF(expr.And(b, a))) {
		t.Fatalf("to_cnf(A & B) should equal to_cnf(B & A)")
	}
	left := expr.ToCNF(expr.Or(a, expr.Or(b, c)))
	right := expr.ToCNF(expr.Or(expr.Or(a, b), c))
	if !expr.Equal(left, right) {
		t.Fatalf("to_cnf(A | (B | C)) should equal to_cnf((A | B) | C)")
	}
}
