// Package posting provides positional posting lists: an immutable map from
// column value to the set of row positions holding it, backed by Roaring
// Bitmaps.
package posting

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Index maps each distinct value of a column to its row positions.
//
// Structure: value -> bitmap of row positions (uint32). Bitmaps are
// compressed and support fast set operations, so position sets stay small
// even for heavily repeated values.
//
// The index is immutable after construction and safe for concurrent reads.
type Index[E comparable] struct {
	posting map[E]*roaring.Bitmap
	rows    int
}

// New builds an index over values; position i holds values[i].
// Row positions are uint32, capping indexable columns at 2^32 rows.
func New[E comparable](values []E) *Index[E] {
	idx := &Index[E]{
		posting: make(map[E]*roaring.Bitmap),
		rows:    len(values),
	}

	for i, v := range values {
		bm, ok := idx.posting[v]
		if !ok {
			bm = roaring.New()
			idx.posting[v] = bm
		}
		bm.Add(uint32(i))
	}

	return idx
}

// Positions returns the ascending row positions holding v.
// Unknown values yield an empty slice.
func (idx *Index[E]) Positions(v E) []uint32 {
	bm, ok := idx.posting[v]
	if !ok {
		return []uint32{}
	}

	return bm.ToArray()
}

// Bitmap returns a copy of the position set for v. The copy is the
// caller's to mutate; unknown values yield an empty bitmap.
func (idx *Index[E]) Bitmap(v E) *roaring.Bitmap {
	bm, ok := idx.posting[v]
	if !ok {
		return roaring.New()
	}

	return bm.Clone()
}

// Contains reports whether row holds v.
func (idx *Index[E]) Contains(v E, row uint32) bool {
	bm, ok := idx.posting[v]
	return ok && bm.Contains(row)
}

// Distinct returns the number of distinct indexed values.
func (idx *Index[E]) Distinct() int {
	return len(idx.posting)
}

// Len returns the number of indexed rows.
func (idx *Index[E]) Len() int {
	return idx.rows
}
