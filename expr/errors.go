package expr

import "errors"

// ErrUnassignedSymbol is returned by Substitute when the model omits a free
// symbol of the expression being evaluated.
var ErrUnassignedSymbol = errors.New("expr: unassigned symbol")
