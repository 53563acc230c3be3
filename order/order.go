// Package order provides ordering and partition predicates over sequences.
package order

import "cmp"

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedUntil(s) == len(s)
}

// IsSortedUntil returns the length of the longest sorted prefix of s:
// len(s) when the whole sequence is sorted, otherwise the index of the
// first element that breaks the order.
func IsSortedUntil[T cmp.Ordered](s []T) int {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return i
		}
	}
	return len(s)
}

// IsIncreasing reports whether each element is >= the one before it.
// Synonym for IsSorted, kept for symmetry with the strict variants.
func IsIncreasing[T cmp.Ordered](s []T) bool {
	return IsSorted(s)
}

// IsStrictlyIncreasing reports whether each element is > the one before it.
func IsStrictlyIncreasing[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}

// IsDecreasing reports whether each element is <= the one before it.
func IsDecreasing[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return false
		}
	}
	return true
}

// IsStrictlyDecreasing reports whether each element is < the one before it.
func IsStrictlyDecreasing[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return false
		}
	}
	return true
}

// IsPartitioned reports whether all elements satisfying p precede all
// elements that do not. True for an empty sequence.
func IsPartitioned[T any](s []T, p func(T) bool) bool {
	i := 0
	for i < len(s) && p(s[i]) {
		i++
	}
	for ; i < len(s); i++ {
		if p(s[i]) {
			return false
		}
	}
	return true
}

// PartitionPoint returns the index of the first element of a partitioned
// sequence that does not satisfy p, using O(log n) probes.
func PartitionPoint[T any](s []T, p func(T) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if p(s[mid]) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
