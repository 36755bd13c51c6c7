package clusters

// growQueueItem is one entry in the stale-tolerant grow-queue: a snapshot
// of a cluster root's (boundarySize, growth) key at push time. Entries can
// go stale as clusters keep growing; PopSmallestOddCluster discards any
// entry whose snapshot no longer matches the live cluster state.
type growQueueItem struct {
	boundarySize int
	growth       float64
	root         int
}

// growQueue is a min-heap of *growQueueItem ordered lexicographically by
// (boundarySize, growth, root) ascending, mirroring the C++ source's
// Plaquette::Compare variadic-tuple comparator. Ties are broken by root id
// ascending for determinism, per spec.md §5.
//
// This is the same "lazy-decrease-key" pattern as dijkstra.nodePQ: rather
// than implementing decrease-key, stale entries are pushed anew and
// discarded on pop.
type growQueue []*growQueueItem

func (q growQueue) Len() int { return len(q) }

func (q growQueue) Less(i, j int) bool {
	if q[i].boundarySize != q[j].boundarySize {
		return q[i].boundarySize < q[j].boundarySize
	}
	if q[i].growth != q[j].growth {
		return q[i].growth < q[j].growth
	}
	return q[i].root < q[j].root
}

func (q growQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *growQueue) Push(x interface{}) { *q = append(*q, x.(*growQueueItem)) }

func (q *growQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
