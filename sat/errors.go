package sat

import "errors"

// ErrNotCNF is returned when ClausesFromCNF is handed an expression that is
// not already in conjunctive normal form. Solve itself takes typed clauses
// and returns no error.
var ErrNotCNF = errors.New("sat: expression is not in CNF")
