package astar

// entry is a frontier record pointing into the runner's node arena.
// seq is the insertion counter used to break ties on f in FIFO order.
type entry struct {
	f    int
	seq  uint64
	node int
}

// frontier is a min-heap of entries ordered by (f, seq) ascending.
// Several entries may reference the same cell; all but the cheapest are
// discarded at pop time by the visited check.
type frontier []entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then by insertion sequence.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (q *frontier) Push(x any) { *q = append(*q, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]

	return e
}
