package topology

import "container/heap"

// pairQueue is a min-heap of NodePair ordered by NodePair.less, directly —
// Go's container/heap is natively a min-heap, so (unlike the original
// C++ std::priority_queue, which is a max-heap and needs its comparator
// inverted to emulate a min-heap) no inversion is needed here. This is the
// Design Notes' "drop the inversion and document the resulting comparator"
// recommendation, applied.
type pairQueue []NodePair

func (q pairQueue) Len() int { return len(q) }

func (q pairQueue) Less(i, j int) bool { return q[i].less(q[j]) }

func (q pairQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pairQueue) Push(x any) { *q = append(*q, x.(NodePair)) }

func (q *pairQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

var _ = heap.Interface(&pairQueue{})
