package execgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/execgo/internal/topk"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrNilCompare is returned when TopKFunc is called without a comparator.
	ErrNilCompare = errors.New("compare func must not be nil")
)

// WorkerError indicates that a single selection worker failed and the
// operation was abandoned as a whole. Worker identifies the failing worker
// (0-based); the underlying cause can be accessed via errors.Unwrap.
type WorkerError struct {
	Worker int
	cause  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d failed: %v", e.Worker, e.cause)
}

func (e *WorkerError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Argument normalization. The internal sentinels never escape; callers
	// match the package-level ones.
	if errors.Is(err, topk.ErrInvalidK) {
		return ErrInvalidK
	}
	if errors.Is(err, topk.ErrInvalidWorkers) {
		return ErrInvalidWorkers
	}
	if errors.Is(err, topk.ErrNilCompare) {
		return ErrNilCompare
	}

	var we *topk.WorkerError
	if errors.As(err, &we) {
		return &WorkerError{Worker: we.Worker, cause: errors.Unwrap(we)}
	}

	return err
}
