// SPDX-License-Identifier: MIT
package optimize

import "container/heap"

// resultHeap is a bounded max-heap over Result.better: the worst retained
// result is always at the root, so a new arrival evicts it in O(log K)
// once the heap is at capacity.
type resultHeap []Result

func (h resultHeap) Len() int { return len(h) }

// Less ranks the worst result first (container/heap's root is the
// smallest-by-Less element), so root always holds the candidate for
// eviction.
func (h resultHeap) Less(i, j int) bool { return h[j].better(h[i]) }
func (h resultHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(Result)) }

func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topKTracker retains the KeepTopK best results seen across a search.
type topKTracker struct {
	k int
	h resultHeap
}

func newTopKTracker(k int) *topKTracker {
	t := &topKTracker{k: k}
	heap.Init(&t.h)
	return t
}

// offer inserts r, evicting the current worst retained result if the
// tracker is already at capacity and r is better than it.
func (t *topKTracker) offer(r Result) {
	if len(t.h) < t.k {
		heap.Push(&t.h, r)
		return
	}
	if r.better(t.h[0]) {
		t.h[0] = r
		heap.Fix(&t.h, 0)
	}
}

// results returns the retained results in no particular order.
func (t *topKTracker) results() []Result {
	out := make([]Result, len(t.h))
	copy(out, t.h)
	return out
}
