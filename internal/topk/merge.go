package topk

// merge pools the per-worker bounded sets and reruns bounded selection over
// the pool, single-threaded, to produce the global top-k in descending rank
// order.
//
// Pooling loses nothing: an element outside its worker's bounded set was
// outranked by at least k elements within that worker's own span, so it
// cannot belong to the global top-k. Candidates keep their original input
// positions, so the merge applies the exact rank order the selectors used
// and the output is independent of the worker count.
func merge[E any](sets []*rankHeap[E], k int, compare func(a, b E) int) []E {
	pool := newRankHeap[E](k, compare)
	for _, set := range sets {
		for _, c := range set.items {
			pool.PushBounded(c, k)
		}
	}

	// Popping yields ascending rank; fill back to front for descending.
	out := make([]E, pool.Len())
	for i := pool.Len() - 1; i >= 0; i-- {
		c, _ := pool.Pop()
		out[i] = c.value
	}

	return out
}
