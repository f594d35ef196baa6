package execgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; a
// Prometheus-backed implementation ships in the prom subpackage.
type MetricsCollector interface {
	// RecordTopK is called after each top-k selection.
	// k is the requested selection size, workers the configured parallelism,
	// n the input length, duration the total time taken; err is nil on success.
	RecordTopK(k, workers, n int, duration time.Duration, err error)

	// RecordGroupSum is called after each grouped summation.
	// n is the input length, groups the number of result groups.
	RecordGroupSum(n, groups int, duration time.Duration, err error)

	// RecordMatch is called after each substring match pass.
	// n is the number of scanned strings, matches the number that matched.
	RecordMatch(n, matches int, duration time.Duration)

	// RecordIntersect is called after each sorted intersection.
	// size is the length of the intersection.
	RecordIntersect(size int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTopK(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGroupSum(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordMatch(int, int, time.Duration)            {}
func (NoopMetricsCollector) RecordIntersect(int, time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TopKCount          atomic.Int64
	TopKErrors         atomic.Int64
	TopKTotalNanos     atomic.Int64
	GroupSumCount      atomic.Int64
	GroupSumErrors     atomic.Int64
	GroupSumTotalNanos atomic.Int64
	MatchCount         atomic.Int64
	MatchHits          atomic.Int64
	IntersectCount     atomic.Int64
}

// RecordTopK implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTopK(k, workers, n int, duration time.Duration, err error) {
	b.TopKCount.Add(1)
	b.TopKTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TopKErrors.Add(1)
	}
}

// RecordGroupSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroupSum(n, groups int, duration time.Duration, err error) {
	b.GroupSumCount.Add(1)
	b.GroupSumTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GroupSumErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(n, matches int, duration time.Duration) {
	b.MatchCount.Add(1)
	b.MatchHits.Add(int64(matches))
}

// RecordIntersect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntersect(size int, duration time.Duration) {
	b.IntersectCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TopKCount:        b.TopKCount.Load(),
		TopKErrors:       b.TopKErrors.Load(),
		TopKAvgNanos:     b.getAvgTopKNanos(),
		GroupSumCount:    b.GroupSumCount.Load(),
		GroupSumErrors:   b.GroupSumErrors.Load(),
		GroupSumAvgNanos: b.getAvgGroupSumNanos(),
		MatchCount:       b.MatchCount.Load(),
		MatchHits:        b.MatchHits.Load(),
		IntersectCount:   b.IntersectCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTopKNanos() int64 {
	count := b.TopKCount.Load()
	if count == 0 {
		return 0
	}
	return b.TopKTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgGroupSumNanos() int64 {
	count := b.GroupSumCount.Load()
	if count == 0 {
		return 0
	}
	return b.GroupSumTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TopKCount        int64
	TopKErrors       int64
	TopKAvgNanos     int64
	GroupSumCount    int64
	GroupSumErrors   int64
	GroupSumAvgNanos int64
	MatchCount       int64
	MatchHits        int64
	IntersectCount   int64
}
