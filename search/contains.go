package search

import "cmp"

// LinearContains reports whether key occurs in items. O(n).
func LinearContains[T comparable](items []T, key T) bool {
	for _, item := range items {
		if item == key {
			return true
		}
	}
	return false
}

// BinaryContains reports whether key occurs in sorted, which must be in
// ascending order. O(log n).
func BinaryContains[T cmp.Ordered](sorted []T, key T) bool {
	low, high := 0, len(sorted)-1
	for low <= high {
		middle := low + (high-low)/2
		switch c := cmp.Compare(sorted[middle], key); {
		case c < 0:
			low = middle + 1
		case c > 0:
			high = middle - 1
		default:
			return true
		}
	}
	return false
}
