// Package topk implements bounded parallel top-k selection: contiguous
// partitioning, per-worker bounded heaps and a deterministic merge.
package topk

// candidate pairs an element with its arrival position in the scanned input.
// The position makes the rank a strict total order: between equal values the
// earlier arrival ranks higher.
type candidate[E any] struct {
	value E
	index int
}

// rankHeap is a binary min-heap by rank: the root is always the lowest-ranked
// candidate currently retained, so bounded insertion can test against it in
// O(1). Value-based storage for cache locality and zero allocations.
// It does NOT implement container/heap to avoid interface overhead.
type rankHeap[E any] struct {
	compare func(a, b E) int
	items   []candidate[E]
	peak    int
}

// newRankHeap creates an empty heap with preallocated capacity.
func newRankHeap[E any](capacity int, compare func(a, b E) int) *rankHeap[E] {
	return &rankHeap[E]{
		compare: compare,
		items:   make([]candidate[E], 0, capacity),
	}
}

// outranks reports whether a ranks strictly above b: larger value wins,
// equal values are broken by the earlier arrival index.
func (h *rankHeap[E]) outranks(a, b candidate[E]) bool {
	if c := h.compare(a.value, b.value); c != 0 {
		return c > 0
	}
	return a.index < b.index
}

// Len returns the number of retained candidates.
func (h *rankHeap[E]) Len() int { return len(h.items) }

// Peak returns the largest number of candidates ever retained at once.
func (h *rankHeap[E]) Peak() int { return h.peak }

// Root returns the lowest-ranked retained candidate.
func (h *rankHeap[E]) Root() (candidate[E], bool) {
	if len(h.items) == 0 {
		return candidate[E]{}, false
	}
	return h.items[0], true
}

// Push inserts a candidate while maintaining the heap invariant.
func (h *rankHeap[E]) Push(c candidate[E]) {
	h.items = append(h.items, c)
	h.siftUp(len(h.items) - 1)
	if len(h.items) > h.peak {
		h.peak = len(h.items)
	}
}

// PushBounded inserts a candidate into a heap bounded to capacity entries.
// Below capacity the candidate is always retained. At capacity the root is
// the lowest-ranked survivor: an incoming candidate that outranks it replaces
// it, anything else is discarded. An incoming value equal to the root's is
// discarded when its index is later, which is always the case within one
// left-to-right scan.
func (h *rankHeap[E]) PushBounded(c candidate[E], capacity int) {
	if len(h.items) < capacity {
		h.Push(c)
		return
	}

	if h.outranks(c, h.items[0]) {
		h.items[0] = c
		h.siftDown(0)
	}
}

// Pop removes and returns the lowest-ranked candidate.
func (h *rankHeap[E]) Pop() (candidate[E], bool) {
	n := len(h.items)
	if n == 0 {
		return candidate[E]{}, false
	}

	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = candidate[E]{} // Zero out for GC
	h.items = h.items[:n-1]

	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return root, true
}

// less reports whether the candidate at i belongs above the one at j,
// i.e. i is ranked below j.
func (h *rankHeap[E]) less(i, j int) bool {
	return h.outranks(h.items[j], h.items[i])
}

// siftUp moves the element at index i up the heap until the heap invariant is restored.
func (h *rankHeap[E]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown moves the element at index i down the heap until the heap invariant is restored.
func (h *rankHeap[E]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(right, left) {
			child = right
		}
		if !h.less(child, i) {
			break
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
