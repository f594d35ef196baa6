// Package stream provides a streaming aggregator that folds incoming
// batches into running statistics in constant memory.
package stream

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// Stats is a snapshot of the running aggregates.
// Min and Max are only meaningful when Count > 0.
type Stats struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean returns Sum/Count, or 0 for an empty stream.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}

	return s.Sum / float64(s.Count)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithRateLimit throttles ingest to perSec values per second with the given
// burst. Add blocks until its batch is admitted; batches larger than burst
// are rejected by the limiter.
func WithRateLimit(perSec float64, burst int) Option {
	return func(a *Aggregator) {
		a.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}
}

// Aggregator folds batches into running count/sum/min/max. State stays
// constant-size no matter how much data has streamed through.
// Safe for concurrent use.
type Aggregator struct {
	limiter *rate.Limiter // nil if unlimited

	mu    sync.Mutex
	stats Stats
}

// New creates an aggregator holding no data.
func New(optFns ...Option) *Aggregator {
	a := &Aggregator{}
	for _, fn := range optFns {
		fn(a)
	}

	return a
}

// Add folds batch into the running aggregates and returns the post-batch
// snapshot. With a rate limit configured, Add waits for len(batch) tokens
// before touching any state; a cancelled ctx aborts with the batch
// unapplied.
func (a *Aggregator) Add(ctx context.Context, batch []float64) (Stats, error) {
	if a.limiter != nil && len(batch) > 0 {
		if err := a.limiter.WaitN(ctx, len(batch)); err != nil {
			return Stats{}, fmt.Errorf("ingest throttled: %w", err)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, v := range batch {
		if a.stats.Count == 0 {
			a.stats.Min = v
			a.stats.Max = v
		} else {
			if v < a.stats.Min {
				a.stats.Min = v
			}
			if v > a.stats.Max {
				a.stats.Max = v
			}
		}
		a.stats.Count++
		a.stats.Sum += v
	}

	return a.stats, nil
}

// Stats returns the current snapshot.
func (a *Aggregator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stats
}

// Reset clears all aggregates.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats = Stats{}
}
