package integration_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/execgo"
	"github.com/hupe1980/execgo/aggregate"
	"github.com/hupe1980/execgo/columnar"
	"github.com/hupe1980/execgo/internal/dataset"
	"github.com/hupe1980/execgo/match"
	"github.com/hupe1980/execgo/stream"
)

func TestEdgeCase_SelectionBounds(t *testing.T) {
	ctx := context.Background()
	values := []float64{3, 1, 4, 1, 5}

	t.Run("KLargerThanInput", func(t *testing.T) {
		got, err := execgo.TopK(ctx, values, 100, 2)
		require.NoError(t, err)
		require.Len(t, got, len(values))
		require.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(got))))
	})

	t.Run("MoreWorkersThanElements", func(t *testing.T) {
		base, err := execgo.TopK(ctx, values, 3, 1)
		require.NoError(t, err)

		got, err := execgo.TopK(ctx, values, 3, 64)
		require.NoError(t, err)
		require.Equal(t, base, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got, err := execgo.TopK(ctx, []float64{}, 5, 4)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, err := execgo.TopK(ctx, values, 0, 2)
		require.ErrorIs(t, err, execgo.ErrInvalidK)
	})

	t.Run("InvalidWorkers", func(t *testing.T) {
		_, err := execgo.TopK(ctx, values, 3, 0)
		require.ErrorIs(t, err, execgo.ErrInvalidWorkers)
	})

	t.Run("NilCompare", func(t *testing.T) {
		_, err := execgo.TopKFunc(ctx, values, 3, 2, nil)
		require.ErrorIs(t, err, execgo.ErrNilCompare)
	})
}

func TestEdgeCase_SelectionCancellation(t *testing.T) {
	values := dataset.NewRNG(3).Floats(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := execgo.TopK(ctx, values, 100, 4)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)
}

func TestEdgeCase_AggregateErrors(t *testing.T) {
	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := aggregate.GroupSum([]float64{1, 2, 3}, []int{0, 1})
		require.ErrorIs(t, err, aggregate.ErrLengthMismatch)
	})

	t.Run("NegativeKey", func(t *testing.T) {
		_, err := aggregate.GroupSum([]float64{1, 2}, []int{0, -4})
		require.ErrorIs(t, err, aggregate.ErrNegativeKey)
	})
}

func TestEdgeCase_ColumnarMissingColumn(t *testing.T) {
	s := columnar.New(columnar.CompressionLZ4)

	_, err := s.Column("missing")
	require.ErrorIs(t, err, columnar.ErrColumnNotFound)

	_, err = s.Runs("missing")
	require.ErrorIs(t, err, columnar.ErrColumnNotFound)
}

func TestEdgeCase_StreamThrottle(t *testing.T) {
	t.Run("BatchExceedsBurst", func(t *testing.T) {
		agg := stream.New(stream.WithRateLimit(50, 2))

		_, err := agg.Add(context.Background(), []float64{1, 2, 3})
		require.Error(t, err)
		require.EqualValues(t, 0, agg.Stats().Count)
	})

	t.Run("CancelledWhileThrottled", func(t *testing.T) {
		agg := stream.New(stream.WithRateLimit(50, 2))

		// Drain the bucket, then force the next batch to wait.
		_, err := agg.Add(context.Background(), []float64{1, 2})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = agg.Add(ctx, []float64{3, 4})
		require.ErrorIs(t, err, context.Canceled)
		require.EqualValues(t, 2, agg.Stats().Count)
	})
}

func TestEdgeCase_MatchEmptyTerm(t *testing.T) {
	items := []string{"alpha", "beta", ""}
	require.Equal(t, len(items), match.Count(items, ""))
}
