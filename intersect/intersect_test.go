package intersect

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	t.Run("Ints", func(t *testing.T) {
		got := Sorted([]int{1, 3, 5, 7, 9}, []int{2, 3, 5, 8, 9})

		assert.Equal(t, []int{3, 5, 9}, got)
	})

	t.Run("Strings", func(t *testing.T) {
		got := Sorted([]string{"ant", "bee", "cat"}, []string{"bee", "cat", "dog"})

		assert.Equal(t, []string{"bee", "cat"}, got)
	})

	t.Run("Disjoint", func(t *testing.T) {
		got := Sorted([]int{1, 2, 3}, []int{4, 5, 6})

		assert.Empty(t, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, Sorted([]int{}, []int{1, 2}))
		assert.Empty(t, Sorted([]int{1, 2}, nil))
	})

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		got := Sorted([]int{1, 1, 2, 2, 3}, []int{1, 2, 2, 4})

		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("IdenticalInputs", func(t *testing.T) {
		in := []int{2, 4, 6}
		got := Sorted(in, in)

		assert.Equal(t, in, got)
	})
}

func TestSortedAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 25; trial++ {
		a := randomSortedUnique(rng, 1+rng.Intn(300), 500)
		b := randomSortedUnique(rng, 1+rng.Intn(300), 500)

		inA := make(map[int]bool, len(a))
		for _, v := range a {
			inA[v] = true
		}

		var want []int
		for _, v := range b {
			if inA[v] {
				want = append(want, v)
			}
		}

		got := Sorted(a, b)
		require.Len(t, got, len(want))
		for i := range want {
			require.Equal(t, want[i], got[i])
		}
	}
}

func TestBitmaps(t *testing.T) {
	t.Run("Intersection", func(t *testing.T) {
		a := roaring.BitmapOf(1, 2, 3, 100, 1000)
		b := roaring.BitmapOf(2, 100, 999)

		got := Bitmaps(a, b)

		assert.Equal(t, []uint32{2, 100}, got.ToArray())
	})

	t.Run("InputsUntouched", func(t *testing.T) {
		a := roaring.BitmapOf(1, 2, 3)
		b := roaring.BitmapOf(2, 3, 4)

		Bitmaps(a, b)

		assert.Equal(t, uint64(3), a.GetCardinality())
		assert.Equal(t, uint64(3), b.GetCardinality())
	})

	t.Run("NilInput", func(t *testing.T) {
		got := Bitmaps(nil, roaring.BitmapOf(1))

		assert.True(t, got.IsEmpty())
	})
}

func randomSortedUnique(rng *rand.Rand, n, max int) []int {
	seen := make(map[int]bool, n)
	for len(seen) < n {
		seen[rng.Intn(max)] = true
	}

	out := make([]int, 0, n)
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
