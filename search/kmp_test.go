package search

import (
	"fmt"
	"strings"
	"testing"
)

func TestKnuthMorrisPrattIndex(t *testing.T) {
	for _, tt := range indexTests {
		t.Run(fmt.Sprintf("%s/%s", truncate(tt.haystack, 20), tt.pattern), func(t *testing.T) {
			kmp := NewKnuthMorrisPratt([]byte(tt.pattern))
			if got := kmp.Index([]byte(tt.haystack)); got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestKnuthMorrisPrattMatchesStdlib(t *testing.T) {
	for _, tt := range indexTests {
		want := strings.Index(tt.haystack, tt.pattern)
		kmp := NewKnuthMorrisPratt([]byte(tt.pattern))
		if got := kmp.Index([]byte(tt.haystack)); got != want {
			t.Errorf("Index(%q, %q) = %d, strings.Index = %d", tt.haystack, tt.pattern, got, want)
		}
	}
}

func TestKnuthMorrisPrattFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{-1, 0}},
		{"aa", []int{-1, 0, 1}},
		{"ab", []int{-1, 0, 0}},
		{"abcabc", []int{-1, 0, 0, 0, 1, 2, 3}},
		{"abcdabcy", []int{-1, 0, 0, 0, 0, 1, 2, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			kmp := NewKnuthMorrisPratt([]byte(tt.pattern))
			if len(kmp.failure) != len(tt.want) {
				t.Fatalf("failure table has len %d, want %d", len(kmp.failure), len(tt.want))
			}
			for i := range tt.want {
				if kmp.failure[i] != tt.want[i] {
					t.Errorf("failure[%d] = %d, want %d", i, kmp.failure[i], tt.want[i])
				}
			}
		})
	}
}

func TestKnuthMorrisPrattPeriodicInput(t *testing.T) {
	// The case where the failure table earns its keep: long borders
	// everywhere, still linear and still exact.
	haystack := strings.Repeat("ab", 1000) + "aab" + strings.Repeat("ab", 10)
	patterns := []string{"aab", "abab", "ababab", "aba", "ba", "bb"}

	for _, p := range patterns {
		want := strings.Index(haystack, p)
		if got := NewKnuthMorrisPratt([]byte(p)).Index([]byte(haystack)); got != want {
			t.Errorf("Index(%q) = %d, want %d", p, got, want)
		}
	}
}

func TestKnuthMorrisPrattGenericSymbols(t *testing.T) {
	type point struct{ x, y int }
	haystack := []point{{0, 0}, {1, 1}, {2, 2}, {1, 1}, {2, 2}, {3, 3}}
	pattern := []point{{1, 1}, {2, 2}, {3, 3}}

	if got := NewKnuthMorrisPratt(pattern).Index(haystack); got != 3 {
		t.Errorf("Index over []point = %d, want 3", got)
	}
}

func TestIndexKnuthMorrisPrattOneShot(t *testing.T) {
	if got := IndexKnuthMorrisPratt([]byte("hello world"), []byte("world")); got != 6 {
		t.Errorf("IndexKnuthMorrisPratt = %d, want 6", got)
	}
	if got := IndexKnuthMorrisPratt([]byte("abc"), []byte("abcd")); got != -1 {
		t.Errorf("IndexKnuthMorrisPratt = %d, want -1", got)
	}
}
