// Package search implements binary search over sorted slices.
package search

import "cmp"

// NotFound is returned by BinarySearch and RecursiveBinarySearch when the
// value is absent.
const NotFound = -1

// BinarySearch returns the index of x in the ascending slice s, or NotFound.
func BinarySearch[T cmp.Ordered](s []T, x T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp.Compare(x, s[mid]); {
		case c < 0:
			hi = mid - 1
		case c > 0:
			lo = mid + 1
		default:
			return mid
		}
	}
	return NotFound
}

// RecursiveBinarySearch returns the same result as BinarySearch.
// Its depth is bounded by log2(len(s)).
func RecursiveBinarySearch[T cmp.Ordered](s []T, x T) int {
	return recursiveSearch(s, x, 0, len(s)-1)
}

func recursiveSearch[T cmp.Ordered](s []T, x T, lo, hi int) int {
	if lo > hi {
		return NotFound
	}
	mid := int(uint(lo+hi) >> 1)
	switch c := cmp.Compare(x, s[mid]); {
	case c < 0:
		return recursiveSearch(s, x, lo, mid-1)
	case c > 0:
		return recursiveSearch(s, x, mid+1, hi)
	default:
		return mid
	}
}

// Index returns the position where x is, or would be inserted, in the
// ascending slice s, and whether it was found.
func Index[T cmp.Ordered](s []T, x T) (int, bool) {
	return IndexFunc(s, x, cmp.Compare[T])
}

// IndexFunc is Index with a caller-supplied comparator.
//
// The returned position equals the number of elements strictly less than x.
// An element comparing equal to x counts as a match.
func IndexFunc[T any](s []T, x T, cmp func(a, b T) int) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], x) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && cmp(s[lo], x) == 0
}
