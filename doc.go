// Package execgo provides embedded query-execution kernels for Go.
//
// The core operation is bounded parallel top-k selection: the input is
// partitioned into contiguous chunks, one bounded selector per worker scans
// its chunk keeping the k best candidates in a fixed-capacity heap, and a
// deterministic merge combines the per-worker sets into the exact global
// result. Memory stays O(workers * k) regardless of input size, and the
// output is identical for every worker count.
//
// # Quick Start
//
//	ctx := context.Background()
//	top, err := execgo.TopK(ctx, values, 10, 4) // k=10, 4 workers
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Custom element types use a comparator:
//
//	top, err := execgo.TopKFunc(ctx, rows, 10, 4, func(a, b Row) int {
//	    return cmp.Compare(a.Score, b.Score)
//	})
//
// # Companion Kernels
//
// Self-contained single-pass kernels from the same family live in their own
// packages:
//
//   - aggregate: grouped summation over dense integer keys
//   - match: substring filtering into reusable bitmask results
//   - intersect: sorted-slice and roaring-bitmap set intersection
//   - columnar: in-memory run-length encoded columns with block compression
//   - posting: value to row-positions index backed by roaring bitmaps
//   - stream: constant-memory running aggregates over batched streams
//
// # Observability
//
// Operations accept options for structured logging and metrics:
//
//	metrics := &execgo.BasicMetricsCollector{}
//	top, _ := execgo.TopK(ctx, values, 10, 4,
//	    execgo.WithLogLevel(slog.LevelDebug),
//	    execgo.WithMetricsCollector(metrics),
//	)
//
// A Prometheus-backed collector ships in the prom subpackage, and the
// execbench command runs all kernels over generated datasets.
package execgo
