package search

// KnuthMorrisPratt scans the haystack left to right using a precomputed
// failure table. The only variant with an O(n+m) bound independent of
// alphabet size or pattern structure.
type KnuthMorrisPratt[T comparable] struct {
	pattern []T
	failure []int // size m+1, failure[0] == -1
}

// NewKnuthMorrisPratt creates a KnuthMorrisPratt matcher for the given
// pattern. The pattern slice is retained, not copied; the caller must not
// mutate it while the matcher is in use.
func NewKnuthMorrisPratt[T comparable](pattern []T) *KnuthMorrisPratt[T] {
	kmp := &KnuthMorrisPratt[T]{pattern: pattern}
	if len(pattern) == 0 {
		return kmp
	}

	// failure[i] is the longest proper border of pattern[0..i), with a -1
	// sentinel at index 0 so a mismatch on the first symbol still advances.
	border := borderLengths(pattern)
	failure := make([]int, len(pattern)+1)
	failure[0] = -1
	for i := 1; i <= len(pattern); i++ {
		failure[i] = border[i-1]
	}
	kmp.failure = failure
	return kmp
}

// Index returns the offset of the first occurrence of the pattern in
// haystack, or -1 if it is absent. An empty pattern matches at 0.
// Index does not mutate matcher state; concurrent calls with distinct
// haystacks are safe.
func (kmp *KnuthMorrisPratt[T]) Index(haystack []T) int {
	m := len(kmp.pattern)
	if m == 0 {
		return 0
	}
	if len(haystack) < m {
		return -1
	}

	// idx is the matched prefix length at the current alignment; the
	// failure table restarts it without re-reading consumed symbols.
	idx, start, last := 0, 0, len(haystack)-m
	for start <= last {
		for kmp.pattern[idx] == haystack[start+idx] {
			idx++
			if idx == m {
				return start
			}
		}
		start += idx - kmp.failure[idx]
		if idx = kmp.failure[idx]; idx < 0 {
			idx = 0
		}
	}
	return -1
}

// IndexKnuthMorrisPratt is a one-shot convenience: it builds a transient
// matcher, runs a single search and discards it.
func IndexKnuthMorrisPratt[T comparable](haystack, pattern []T) int {
	return NewKnuthMorrisPratt(pattern).Index(haystack)
}
