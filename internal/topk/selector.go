package topk

import "context"

// cancelCheckInterval is the number of elements scanned between context
// polls. Polling every element would dominate the scan loop for cheap
// comparators; a stride keeps cancellation latency bounded without
// measurable per-element cost.
const cancelCheckInterval = 1024

// selectSpan scans input[sp.start:sp.end] left to right and retains the k
// top-ranked candidates in h, tagging each candidate with its absolute input
// position. The heap never holds more than k entries.
func selectSpan[E any](ctx context.Context, h *rankHeap[E], input []E, sp span, k int) error {
	for i := sp.start; i < sp.end; i++ {
		if (i-sp.start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		h.PushBounded(candidate[E]{value: input[i], index: i}, k)
	}
	return nil
}
