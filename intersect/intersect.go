// Package intersect computes intersections of ordered collections: a linear
// two-pointer walk for sorted slices and a roaring-bitmap path for uint32
// sets.
package intersect

import (
	"cmp"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sorted returns the values present in both a and b.
// Both inputs must be sorted ascending (caller's responsibility); the walk
// is a single linear pass, so unsorted inputs produce garbage. Duplicates
// within an input are tolerated, the output is strictly increasing.
func Sorted[E cmp.Ordered](a, b []E) []E {
	out := make([]E, 0, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			if len(out) == 0 || out[len(out)-1] != a[i] {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}

	return out
}

// Bitmaps returns the intersection of two uint32 sets as a new bitmap.
// Neither input is modified. Nil inputs are treated as empty sets.
func Bitmaps(a, b *roaring.Bitmap) *roaring.Bitmap {
	if a == nil || b == nil {
		return roaring.New()
	}

	return roaring.And(a, b)
}
