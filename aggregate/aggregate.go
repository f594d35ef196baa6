// Package aggregate provides grouped summation over dense integer keys.
//
// The kernel is a single sequential pass: values are accumulated into a
// result slice indexed directly by group key, so no hashing or sorting is
// involved. Keys must be small non-negative integers for this layout to
// pay off; sparse or huge key spaces belong in a hash-based aggregator.
package aggregate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains the value types grouped summation can accumulate.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrLengthMismatch is returned when values and keys differ in length.
	ErrLengthMismatch = errors.New("values and keys must have equal length")

	// ErrNegativeKey is returned when a group key is negative.
	ErrNegativeKey = errors.New("group key must not be negative")
)

// GroupSum accumulates values into per-group sums.
// keys[i] names the group of values[i]; the result has length max(keys)+1
// and result[g] holds the sum of all values assigned to group g. Groups
// that never occur sum to zero. Empty input yields an empty result.
func GroupSum[V Number](values []V, keys []int) ([]V, error) {
	if len(values) != len(keys) {
		return nil, fmt.Errorf("%w: %d values, %d keys", ErrLengthMismatch, len(values), len(keys))
	}

	if len(values) == 0 {
		return []V{}, nil
	}

	maxKey := 0
	for i, k := range keys {
		if k < 0 {
			return nil, fmt.Errorf("%w: key %d at position %d", ErrNegativeKey, k, i)
		}
		if k > maxKey {
			maxKey = k
		}
	}

	sums := make([]V, maxKey+1)
	for i, v := range values {
		sums[keys[i]] += v
	}

	return sums, nil
}
