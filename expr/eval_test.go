package expr_test

import (
	"errors"
	"testing"

	"github.com/entrenchly/entrench/expr"
)

func TestFreeSymbolsSortedDeduplicated(t *testing.T) {
	a, b := expr.NewAtom("B"), expr.NewAtom("A")
	got := expr.FreeSymbols(expr.And(a, b, a))
	want := []string{"A", "B"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("FreeSymbols = %v, want %v", got, want)
	}
}

func TestSubstituteEvaluatesFullyAssigned(t *testing.T) {
	a, b := expr.NewAtom("A"), expr.NewAtom("B")
	e := expr.And(a, expr.Not(b))

	val, err := expr.Substitute(e, expr.Model{"A": true, "B": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !val {
		t.Fatalf("expected true")
	}

	val, err = expr.Substitute(e, expr.Model{"A": true, "B": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val {
		t.Fatalf("expected false")
	}
}

func TestSubstituteUnassignedSymbol(t *testing.T) {
	a := expr.NewAtom("A")
	_, err := expr.Substitute(a, expr.Model{})
	if !errors.Is(err, expr.ErrUnassignedSymbol) {
		t.Fatalf("expected ErrUnassignedSymbol, got %v", err)
	}
}

func TestSubstituteImpliesAndIff(t *testing.T) {
	a, b := expr.NewAtom("A"), expr.NewAtom("B")

	val, err := expr.Substitute(expr.Implies(a, b), expr.Model{"A": true, "B": false})
	if err != nil || val {
		t.Fatalf("A -> B under A=T,B=F should be false, got %v err %v", val, err)
	}

	val, err = expr.Substitute(expr.Iff(a, b), expr.Model{"A": true, "B": true})
	if err != nil || !val {
		t.Fatalf("A <-> B under A=T,B=T should be true, got %v err %v", val, err)
	}
}
