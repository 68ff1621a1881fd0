package belief

// beliefPQ is a max-heap (priority queue) of *Belief, ordered by
// Belief.Order descending, generalising katalvlaran/lvlath's dijkstra
// nodePQ min-heap pattern to a max-heap keyed on entrenchment.
type beliefPQ []*Belief

// Len returns the number of beliefs in the heap.
func (pq beliefPQ) Len() int { return len(pq) }

// Less defines the comparison: larger Order → higher priority.
func (pq beliefPQ) Less(i, j int) bool { return pq[i].Order.Cmp(pq[j].Order) > 0 }

// Swap swaps two elements in the heap.
func (pq beliefPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must be
// of type *Belief.
func (pq *beliefPQ) Push(x interface{}) { *pq = append(*pq, x.(*Belief)) }

// Pop removes and returns the last element of the slice. Called by heap.Pop,
// which first swaps the highest-priority element into that position.
func (pq *beliefPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
