package execgo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)

func TestBasicMetricsCollector(t *testing.T) {
	t.Run("TopK", func(t *testing.T) {
		c := &BasicMetricsCollector{}

		c.RecordTopK(10, 4, 1000, 100*time.Nanosecond, nil)
		c.RecordTopK(10, 4, 1000, 300*time.Nanosecond, nil)
		c.RecordTopK(0, 4, 1000, 200*time.Nanosecond, errors.New("bad k"))

		stats := c.GetStats()
		assert.Equal(t, int64(3), stats.TopKCount)
		assert.Equal(t, int64(1), stats.TopKErrors)
		assert.Equal(t, int64(200), stats.TopKAvgNanos)
	})

	t.Run("GroupSum", func(t *testing.T) {
		c := &BasicMetricsCollector{}

		c.RecordGroupSum(500, 8, 400*time.Nanosecond, nil)
		c.RecordGroupSum(500, 0, 600*time.Nanosecond, errors.New("length mismatch"))

		stats := c.GetStats()
		assert.Equal(t, int64(2), stats.GroupSumCount)
		assert.Equal(t, int64(1), stats.GroupSumErrors)
		assert.Equal(t, int64(500), stats.GroupSumAvgNanos)
	})

	t.Run("MatchAndIntersect", func(t *testing.T) {
		c := &BasicMetricsCollector{}

		c.RecordMatch(100, 7, time.Microsecond)
		c.RecordMatch(100, 3, time.Microsecond)
		c.RecordIntersect(42, time.Microsecond)

		stats := c.GetStats()
		assert.Equal(t, int64(2), stats.MatchCount)
		assert.Equal(t, int64(10), stats.MatchHits)
		assert.Equal(t, int64(1), stats.IntersectCount)
	})

	t.Run("EmptySnapshot", func(t *testing.T) {
		c := &BasicMetricsCollector{}

		stats := c.GetStats()
		assert.Zero(t, stats.TopKCount)
		assert.Zero(t, stats.TopKAvgNanos)
		assert.Zero(t, stats.GroupSumAvgNanos)
	})
}
