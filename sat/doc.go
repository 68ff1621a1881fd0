// Package sat decides satisfiability of CNF clause sets with WalkSAT, an
// incomplete randomised local-search procedure, and builds an entailment
// helper on top of it via the semantic deduction theorem. The solver takes
// an injectable *rand.Rand so tests can seed it, the way
// katalvlaran/lvlath's graph algorithm tests seed rand.New(rand.NewSource(..))
// for reproducible runs.
package sat
