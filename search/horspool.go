package search

// Horspool implements Boyer-Moore-Horspool: a single simplified skip
// table and no good-suffix rule. Faster to construct and usually fast in
// practice, but the worst case degrades to O(n*m) on highly repetitive
// input.
type Horspool[T comparable] struct {
	pattern []T
	skip    skipTable[T]
}

// NewHorspool creates a Horspool matcher for the given pattern.
// The pattern slice is retained, not copied; the caller must not mutate it
// while the matcher is in use.
func NewHorspool[T comparable](pattern []T) *Horspool[T] {
	h := &Horspool[T]{pattern: pattern}
	if len(pattern) == 0 {
		return h
	}
	// The last pattern symbol is deliberately excluded: a full match is
	// detected by comparison, and its skip must come from an earlier
	// occurrence (or default to m).
	m := len(pattern)
	h.skip = newSkipTable[T](m, m)
	for i := 0; i < m-1; i++ {
		h.skip.insert(pattern[i], m-1-i)
	}
	return h
}

// Index returns the offset of the first occurrence of the pattern in
// haystack, or -1 if it is absent. An empty pattern matches at 0.
// Index does not mutate matcher state; concurrent calls with distinct
// haystacks are safe.
func (h *Horspool[T]) Index(haystack []T) int {
	m := len(h.pattern)
	if m == 0 {
		return 0
	}
	if len(haystack) < m {
		return -1
	}

	pos, last := 0, len(haystack)-m
	for pos <= last {
		j := m - 1
		for h.pattern[j] == haystack[pos+j] {
			if j == 0 {
				return pos
			}
			j--
		}
		// Shift on the corpus symbol under the pattern's last position,
		// regardless of where the mismatch happened.
		pos += h.skip.lookup(haystack[pos+m-1])
	}
	return -1
}

// IndexHorspool is a one-shot convenience: it builds a transient matcher,
// runs a single search and discards it.
func IndexHorspool[T comparable](haystack, pattern []T) int {
	return NewHorspool(pattern).Index(haystack)
}
