// Package match provides substring filtering over string slices, reporting
// matches as a compact bitmap keyed by input position.
package match

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Mask scans items and returns a bitmap with bit i set iff items[i]
// contains term. An empty term matches every item.
func Mask(items []string, term string) *bitset.BitSet {
	mask := bitset.New(uint(len(items)))

	for i, s := range items {
		if strings.Contains(s, term) {
			mask.Set(uint(i))
		}
	}

	return mask
}

// Filter returns the items that contain term, preserving input order.
func Filter(items []string, term string) []string {
	mask := Mask(items, term)

	out := make([]string, 0, mask.Count())
	for i, ok := mask.NextSet(0); ok; i, ok = mask.NextSet(i + 1) {
		out = append(out, items[i])
	}

	return out
}

// Count returns the number of items that contain term.
func Count(items []string, term string) int {
	return int(Mask(items, term).Count())
}
