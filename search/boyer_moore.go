// Package search implements repeatable substring search over generic
// symbol sequences: Boyer-Moore, Boyer-Moore-Horspool and
// Knuth-Morris-Pratt. Construct a matcher once with a pattern, then call
// Index on any number of haystacks; pattern analysis cost is paid once.
package search

// BoyerMoore performs fast repeated substring searches using the
// bad-character and strong good-suffix rules. Worst case O(n+m).
// Construct once with NewBoyerMoore, then call Index on multiple haystacks.
type BoyerMoore[T comparable] struct {
	pattern []T
	skip    skipTable[T] // last occurrence offset of each pattern symbol
	suffix  []int        // good-suffix shifts, size m+1
}

// NewBoyerMoore creates a BoyerMoore matcher for the given pattern.
// The pattern slice is retained, not copied; the caller must not mutate it
// while the matcher is in use.
func NewBoyerMoore[T comparable](pattern []T) *BoyerMoore[T] {
	bm := &BoyerMoore[T]{pattern: pattern}
	if len(pattern) == 0 {
		return bm
	}
	bm.skip = newSkipTable[T](len(pattern), -1)
	for i, sym := range pattern {
		bm.skip.insert(sym, i)
	}
	bm.suffix = suffixShifts(pattern)
	return bm
}

// Index returns the offset of the first occurrence of the pattern in
// haystack, or -1 if it is absent. An empty pattern matches at 0.
// Index does not mutate matcher state; concurrent calls with distinct
// haystacks are safe.
func (bm *BoyerMoore[T]) Index(haystack []T) int {
	m := len(bm.pattern)
	if m == 0 {
		return 0
	}
	if len(haystack) < m {
		return -1
	}

	pos, last := 0, len(haystack)-m
	for pos <= last {
		// Compare right to left at the current alignment.
		j := m
		for bm.pattern[j-1] == haystack[pos+j-1] {
			j--
			if j == 0 {
				return pos
			}
		}

		// pattern[j..m) matched, pattern[j-1] did not. Take the
		// bad-character shift only when it moves strictly further
		// forward than the good-suffix shift; this combination, not a
		// naive max, is what keeps the worst case linear.
		k := bm.skip.lookup(haystack[pos+j-1])
		if bc := j - k - 1; k < j && bc > bm.suffix[j] {
			pos += bc
		} else {
			pos += bm.suffix[j]
		}
	}
	return -1
}

// suffixShifts builds the good-suffix shift table: suffix[j] is the minimal
// shift preserving the matched suffix pattern[j..m) under the strong
// good-suffix rule. Built from two borderLengths passes, one over the
// pattern and one over its reverse.
func suffixShifts[T comparable](pattern []T) []int {
	m := len(pattern)

	reversed := make([]T, m)
	for i, sym := range pattern {
		reversed[m-1-i] = sym
	}

	fwd := borderLengths(pattern)
	rev := borderLengths(reversed)

	// Base case: shift by the period implied by the longest border of the
	// whole pattern.
	suffix := make([]int, m+1)
	for i := range suffix {
		suffix[i] = m - fwd[m-1]
	}

	// Refine with borders of every reversed prefix.
	for i := 0; i < m; i++ {
		j := m - rev[i]
		if k := i - rev[i] + 1; suffix[j] > k {
			suffix[j] = k
		}
	}
	return suffix
}

// IndexBoyerMoore is a one-shot convenience: it builds a transient matcher,
// runs a single search and discards it. Use NewBoyerMoore directly when
// searching for the same pattern repeatedly.
func IndexBoyerMoore[T comparable](haystack, pattern []T) int {
	return NewBoyerMoore(pattern).Index(haystack)
}
