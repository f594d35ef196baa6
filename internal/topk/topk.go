package topk

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrNilCompare is returned when no comparator is supplied.
	ErrNilCompare = errors.New("compare func must not be nil")
)

// WorkerError reports a selector that failed, identifying the worker.
// The underlying cause can be accessed via errors.Unwrap.
type WorkerError struct {
	Worker int
	cause  error
}

// NewWorkerError wraps cause as the failure of the given worker.
func NewWorkerError(worker int, cause error) *WorkerError {
	return &WorkerError{Worker: worker, cause: cause}
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.cause)
}

func (e *WorkerError) Unwrap() error { return e.cause }

// Result carries the merged output of one run together with per-worker
// instrumentation.
type Result[E any] struct {
	// Values holds the global top-k, descending by rank, length min(k, n).
	Values []E
	// Peaks holds the peak heap occupancy per worker (always <= k).
	Peaks []int
}

// Run executes the full pipeline: partition the input into one contiguous
// span per worker, select the k top-ranked candidates of each span in
// parallel, and merge the bounded sets into the global top-k after all
// workers finished.
//
// The first failing worker cancels the rest; no partial result is returned.
// A panic inside a worker (possible with a caller-supplied comparator) is
// converted to a *WorkerError. The input slice is shared read-only across
// workers and never mutated.
func Run[E any](ctx context.Context, input []E, k, workers int, compare func(a, b E) int) (Result[E], error) {
	if k < 1 {
		return Result[E]{}, ErrInvalidK
	}
	if workers < 1 {
		return Result[E]{}, ErrInvalidWorkers
	}
	if compare == nil {
		return Result[E]{}, ErrNilCompare
	}

	if len(input) == 0 {
		return Result[E]{Values: []E{}, Peaks: make([]int, workers)}, nil
	}

	parts := spans(len(input), workers)
	sets := make([]*rankHeap[E], workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for w, sp := range parts {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = NewWorkerError(w, fmt.Errorf("panic: %v", r))
				}
			}()

			capacity := k
			if sp.len() < capacity {
				capacity = sp.len()
			}

			h := newRankHeap[E](capacity, compare)
			if err := selectSpan(gctx, h, input, sp, k); err != nil {
				// Cancellation is not a worker fault; return it as-is.
				return err
			}
			sets[w] = h

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result[E]{}, fmt.Errorf("top-k cancelled: %w", err)
		}
		return Result[E]{}, err
	}

	peaks := make([]int, workers)
	for w, set := range sets {
		peaks[w] = set.Peak()
	}

	return Result[E]{Values: merge(sets, k, compare), Peaks: peaks}, nil
}
