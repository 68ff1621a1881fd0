// Package belief implements an epistemic-entrenchment belief base over
// propositional expressions: an entrenchment-ordered store supporting tell,
// ask, expand, revise and retract, with the max_degree reasoning primitive
// computed by grouping beliefs into equal-order bands and querying the sat
// package's entailment helper band by band.
//
// The store is a max-heap keyed on Order, the same container/heap plus
// functional-options shape katalvlaran/lvlath's dijkstra package uses for
// its priority queue and configuration, generalised here from a min-heap
// over distances to a max-heap over entrenchment.
package belief
