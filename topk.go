package execgo

import (
	"cmp"
	"context"
	"time"

	"github.com/hupe1980/execgo/internal/topk"
)

// TopK returns the k highest elements of input in descending order, selected
// by workers parallel selectors over contiguous chunks of the input.
//
// Equal values are ranked by arrival order (earlier position first), so the
// output is fully deterministic and identical for every worker count. The
// input slice is treated read-only and never mutated. When the input holds
// fewer than k elements the result is correspondingly shorter; an empty
// input yields an empty result, not an error.
//
// The whole operation fails atomically: on cancellation or worker failure
// no partial result is returned.
func TopK[E cmp.Ordered](ctx context.Context, input []E, k, workers int, optFns ...Option) ([]E, error) {
	return TopKFunc(ctx, input, k, workers, cmp.Compare[E], optFns...)
}

// TopKFunc is TopK with a caller-supplied total-order comparator. compare
// follows the cmp.Compare contract: negative when a ranks below b, zero when
// equal, positive when a ranks above b. A panic inside compare is contained
// to the failing worker and surfaces as a *WorkerError.
func TopKFunc[E any](ctx context.Context, input []E, k, workers int, compare func(a, b E) int, optFns ...Option) ([]E, error) {
	start := time.Now()
	o := applyOptions(optFns)

	res, err := topk.Run(ctx, input, k, workers, compare)
	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordTopK(k, workers, len(input), time.Since(start), err)
		o.logger.LogTopK(ctx, k, workers, len(input), 0, err)
		return nil, err
	}

	duration := time.Since(start)
	o.metricsCollector.RecordTopK(k, workers, len(input), duration, nil)
	o.logger.LogTopK(ctx, k, workers, len(input), len(res.Values), nil)
	return res.Values, nil
}
