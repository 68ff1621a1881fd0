// Package expr implements the propositional expression kernel: an immutable
// syntax tree over named atoms, canonical (AC-normalised) construction of
// And/Or, CNF conversion, free-symbol extraction, and substitution under a
// total model.
//
// Every Expression a caller can observe was built through one of the
// exported constructors, so structural equality never needs to re-derive
// canonical form on the fly — And and Or are flattened, deduplicated and
// sorted at construction time, the same way DoOR-Team/gophersat's bf package
// simplifies and/or nodes in nnf(), generalised here from NNF-only
// simplification to full canonical ordering.
package expr
