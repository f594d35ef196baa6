// Package prom provides a Prometheus-backed metrics collector for the
// execgo kernels.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/execgo"
)

// Collector implements execgo.MetricsCollector on Prometheus primitives.
// Operation latencies land in a histogram labelled by operation and status,
// volumes in per-operation counters.
type Collector struct {
	latency    *prometheus.HistogramVec
	topK       *prometheus.CounterVec
	groupSum   *prometheus.CounterVec
	matchHits  prometheus.Counter
	intersects prometheus.Counter
}

var _ execgo.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector registered with reg.
// Pass prometheus.DefaultRegisterer to use the default registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "execgo_operation_latency_seconds",
			Help:    "Latency of kernel operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		topK: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "execgo_topk_selections_total",
			Help: "Total top-k selections",
		}, []string{"status"}),
		groupSum: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "execgo_groupsum_runs_total",
			Help: "Total grouped summations",
		}, []string{"status"}),
		matchHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "execgo_match_hits_total",
			Help: "Total substring match hits",
		}),
		intersects: factory.NewCounter(prometheus.CounterOpts{
			Name: "execgo_intersections_total",
			Help: "Total sorted intersections",
		}),
	}
}

// RecordTopK implements execgo.MetricsCollector.
func (c *Collector) RecordTopK(k, workers, n int, duration time.Duration, err error) {
	status := statusOf(err)
	c.latency.WithLabelValues("topk", status).Observe(duration.Seconds())
	c.topK.WithLabelValues(status).Inc()
}

// RecordGroupSum implements execgo.MetricsCollector.
func (c *Collector) RecordGroupSum(n, groups int, duration time.Duration, err error) {
	status := statusOf(err)
	c.latency.WithLabelValues("groupsum", status).Observe(duration.Seconds())
	c.groupSum.WithLabelValues(status).Inc()
}

// RecordMatch implements execgo.MetricsCollector.
func (c *Collector) RecordMatch(n, matches int, duration time.Duration) {
	c.latency.WithLabelValues("match", "success").Observe(duration.Seconds())
	c.matchHits.Add(float64(matches))
}

// RecordIntersect implements execgo.MetricsCollector.
func (c *Collector) RecordIntersect(size int, duration time.Duration) {
	c.latency.WithLabelValues("intersect", "success").Observe(duration.Seconds())
	c.intersects.Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
