package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSum(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		sums, err := GroupSum([]int64{10, 20, 30, 40}, []int{0, 1, 0, 2})
		require.NoError(t, err)

		assert.Equal(t, []int64{40, 20, 40}, sums)
	})

	t.Run("Floats", func(t *testing.T) {
		sums, err := GroupSum([]float64{1.5, 2.5, 3.0}, []int{1, 1, 0})
		require.NoError(t, err)

		assert.InDelta(t, 3.0, sums[0], 1e-9)
		assert.InDelta(t, 4.0, sums[1], 1e-9)
	})

	t.Run("GapsSumToZero", func(t *testing.T) {
		sums, err := GroupSum([]int{7, 8}, []int{0, 4})
		require.NoError(t, err)

		assert.Equal(t, []int{7, 0, 0, 0, 8}, sums)
	})

	t.Run("SingleGroup", func(t *testing.T) {
		sums, err := GroupSum([]int{1, 2, 3}, []int{0, 0, 0})
		require.NoError(t, err)

		assert.Equal(t, []int{6}, sums)
	})

	t.Run("Empty", func(t *testing.T) {
		sums, err := GroupSum([]int{}, []int{})
		require.NoError(t, err)

		assert.Empty(t, sums)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := GroupSum([]int{1, 2}, []int{0})
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("NegativeKey", func(t *testing.T) {
		_, err := GroupSum([]int{1, 2, 3}, []int{0, -1, 2})
		require.ErrorIs(t, err, ErrNegativeKey)
		assert.Contains(t, err.Error(), "position 1")
	})
}

func TestGroupSumAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(500)
		maxKey := 1 + rng.Intn(32)

		values := make([]int64, n)
		keys := make([]int, n)
		for i := range values {
			values[i] = int64(rng.Intn(1000) - 500)
			keys[i] = rng.Intn(maxKey)
		}

		want := make(map[int]int64)
		highest := 0
		for i, v := range values {
			want[keys[i]] += v
			if keys[i] > highest {
				highest = keys[i]
			}
		}

		sums, err := GroupSum(values, keys)
		require.NoError(t, err)
		require.Len(t, sums, highest+1)

		for g, s := range sums {
			assert.Equal(t, want[g], s, "group %d", g)
		}
	}
}
