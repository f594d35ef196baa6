package main

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/execgo"
	"github.com/hupe1980/execgo/aggregate"
	"github.com/hupe1980/execgo/columnar"
	"github.com/hupe1980/execgo/intersect"
	"github.com/hupe1980/execgo/match"
	"github.com/hupe1980/execgo/posting"
	"github.com/hupe1980/execgo/stream"
)

type runFunc func(ctx context.Context, b *benchRun) error

func command(use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBenchRun()
			if err != nil {
				return err
			}
			defer b.finish()

			return run(cmd.Context(), b)
		},
	}
}

var (
	topkCmd      = command("topk", "Benchmark bounded parallel top-k selection", runTopK)
	groupSumCmd  = command("groupsum", "Benchmark grouped summation over dense keys", runGroupSum)
	matchCmd     = command("match", "Benchmark substring filtering", runMatch)
	intersectCmd = command("intersect", "Benchmark sorted-array intersection", runIntersect)
	columnarCmd  = command("columnar", "Benchmark run-length column storage", runColumnar)
	streamCmd    = command("stream", "Benchmark the streaming aggregator", runStream)
	allCmd       = command("all", "Run the full kernel suite", runAll)
)

func runAll(ctx context.Context, b *benchRun) error {
	for _, run := range []runFunc{
		runGroupSum, runMatch, runIntersect, runTopK, runColumnar, runStream,
	} {
		if err := run(ctx, b); err != nil {
			return err
		}
	}

	return nil
}

func runTopK(ctx context.Context, b *benchRun) error {
	data := b.rng.Floats(cfg.Size)

	start := time.Now()
	top, err := execgo.TopK(ctx, data, cfg.K, cfg.Workers,
		execgo.WithLogger(b.logger),
		execgo.WithMetricsCollector(b.metrics),
	)
	if err != nil {
		return err
	}

	fmt.Printf("topk: selected %d of %d in %s using %d workers\n",
		len(top), len(data), time.Since(start), cfg.Workers)
	fmt.Printf("  top %d: %.6v\n", min(10, len(top)), top[:min(10, len(top))])

	return nil
}

func runGroupSum(ctx context.Context, b *benchRun) error {
	values := b.rng.Floats(cfg.Size)
	keys := b.rng.IntKeys(cfg.Size, max(1, cfg.Size/10))

	start := time.Now()
	sums, err := aggregate.GroupSum(values, keys)
	elapsed := time.Since(start)

	b.metrics.RecordGroupSum(len(values), len(sums), elapsed, err)
	b.logger.LogGroupSum(ctx, len(values), len(sums), err)
	if err != nil {
		return err
	}

	fmt.Printf("groupsum: %d values into %d groups in %s\n", len(values), len(sums), elapsed)
	fmt.Printf("  first sums: %.4v\n", sums[:min(10, len(sums))])

	return nil
}

func runMatch(ctx context.Context, b *benchRun) error {
	items := b.rng.Strings(cfg.Size, max(1, cfg.Size/100))

	start := time.Now()
	mask := match.Mask(items, cfg.Term)
	elapsed := time.Since(start)

	matches := int(mask.Count())
	b.metrics.RecordMatch(len(items), matches, elapsed)
	b.logger.LogMatch(ctx, len(items), matches)

	fmt.Printf("match: %q hit %d of %d strings in %s\n", cfg.Term, matches, len(items), elapsed)

	return nil
}

func runIntersect(ctx context.Context, b *benchRun) error {
	half := max(1, cfg.Size/2)
	left := b.rng.SortedUnique(half, cfg.Size)
	right := b.rng.SortedUnique(half, cfg.Size)

	start := time.Now()
	common := intersect.Sorted(left, right)
	elapsed := time.Since(start)

	b.metrics.RecordIntersect(len(common), elapsed)
	b.logger.LogIntersect(ctx, len(left), len(right), len(common))

	// Cross-check against the bitmap path
	bmLeft, bmRight := roaring.New(), roaring.New()
	for _, v := range left {
		bmLeft.Add(uint32(v))
	}
	for _, v := range right {
		bmRight.Add(uint32(v))
	}
	agrees := intersect.Bitmaps(bmLeft, bmRight).GetCardinality() == uint64(len(common))

	fmt.Printf("intersect: %d common of %d/%d in %s (bitmap agrees: %t)\n",
		len(common), len(left), len(right), elapsed, agrees)

	return nil
}

func runColumnar(ctx context.Context, b *benchRun) error {
	compression, err := columnar.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}

	values := b.rng.RunValues(cfg.Size, 32)
	store := columnar.New(compression)

	start := time.Now()
	if err := store.AddColumn("bench", values); err != nil {
		return err
	}
	encodeTime := time.Since(start)

	start = time.Now()
	decoded, err := store.Column("bench")
	if err != nil {
		return err
	}
	decodeTime := time.Since(start)

	if len(decoded) != len(values) {
		return fmt.Errorf("round trip lost values: %d != %d", len(decoded), len(values))
	}

	runs, err := store.Runs("bench")
	if err != nil {
		return err
	}

	ratio, err := store.Ratio("bench")
	if err != nil {
		return err
	}

	b.logger.DebugContext(ctx, "column stored",
		"values", len(values),
		"runs", len(runs),
		"compression", compression.String(),
		"bytes", store.MemoryUsage(),
	)

	fmt.Printf("columnar: %d values, %d runs, %s compression, encode %s, decode %s\n",
		len(values), len(runs), compression, encodeTime, decodeTime)
	fmt.Printf("  footprint: %d bytes (%.2f%% of raw)\n", store.MemoryUsage(), ratio*100)

	// Positional index over the decoded column
	idx := posting.New(decoded)
	fmt.Printf("  posting: %d distinct values, %d positions for value %d\n",
		idx.Distinct(), len(idx.Positions(decoded[0])), decoded[0])

	return nil
}

func runStream(ctx context.Context, b *benchRun) error {
	agg := stream.New()

	const batchSize = 4096
	remaining := cfg.Size

	start := time.Now()
	for remaining > 0 {
		n := min(batchSize, remaining)
		if _, err := agg.Add(ctx, b.rng.Floats(n)); err != nil {
			return err
		}
		remaining -= n
	}
	elapsed := time.Since(start)

	stats := agg.Stats()
	fmt.Printf("stream: %d values in %s (mean %.4f, min %.4f, max %.4f)\n",
		stats.Count, elapsed, stats.Mean(), stats.Min, stats.Max)

	return nil
}
