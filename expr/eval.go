package expr

import (
	"fmt"
	"sort"
)

// Model is a total truth assignment over atom names.
type Model = map[string]bool

// FreeSymbols returns the sorted, deduplicated set of atom names appearing
// in e.
func FreeSymbols(e Expression) []string {
	seen := make(map[string]struct{})
	collectSymbols(e, seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collectSymbols(e Expression, into map[string]struct{}) {
	switch v := e.(type) {
	case atomExpr:
		into[string(v)] = struct{}{}
	case constExpr:
	case notExpr:
		collectSymbols(v.e, into)
	case andExpr:
		for _, c := range v {
			collectSymbols(c, into)
		}
	case orExpr:
		for _, c := range v {
			collectSymbols(c, into)
		}
	case impliesExpr:
		collectSymbols(v.a, into)
		collectSymbols(v.b, into)
	case iffExpr:
		collectSymbols(v.a, into)
		collectSymbols(v.b, into)
	}
}

// Substitute evaluates e under model, which must assign every atom in
// FreeSymbols(e); otherwise it returns ErrUnassignedSymbol.
func Substitute(e Expression, model Model) (bool, error) {
	switch v := e.(type) {
	case constExpr:
		return bool(v), nil
	case atomExpr:
		val, ok := model[string(v)]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnassignedSymbol, string(v))
		}
		return val, nil
	case notExpr:
		val, err := Substitute(v.e, model)
		if err != nil {
			return false, err
		}
		return !val, nil
	case andExpr:
		for _, c := range v {
			val, err := Substitute(c, model)
			if err != nil {
				return false, err
			}
			if !val {
				return false, nil
			}
		}
		return true, nil
	case orExpr:
		for _, c := range v {
			val, err := Substitute(c, model)
			if err != nil {
				return false, err
			}
			if val {
				return true, nil
			}
		}
		return false, nil
	case impliesExpr:
		a, err := Substitute(v.a, model)
		if err != nil {
			return false, err
		}
		if !a {
			return true, nil
		}
		return Substitute(v.b, model)
	case iffExpr:
		a, err := Substitute(v.a, model)
		if err != nil {
			return false, err
		}
		b, err := Substitute(v.b, model)
		if err != nil {
			return false, err
		}
		return a == b, nil
	default:
		return false, fmt.Errorf("expr: unknown expression type %T", e)
	}
}
