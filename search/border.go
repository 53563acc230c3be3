package search

// borderLengths computes, for each prefix of s, the length of its longest
// proper prefix that is also a suffix. This is the classic failure-function
// recurrence; total work is amortized O(len(s)).
//
// The same routine backs the KMP failure table and both passes (forward and
// reversed pattern) of the Boyer-Moore suffix table.
func borderLengths[T comparable](s []T) []int {
	border := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		k := border[i-1]
		for k > 0 && s[k] != s[i] {
			k = border[k-1]
		}
		if s[k] == s[i] {
			k++
		}
		border[i] = k
	}
	return border
}
