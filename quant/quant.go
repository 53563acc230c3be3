// Package quant provides quantifier predicates over sequences: all, any,
// none and exactly-one, with value-equality shorthands. Each is a single
// O(n) scan with early exit.
package quant

// All reports whether every element of s satisfies p.
// True for an empty sequence.
func All[T any](s []T, p func(T) bool) bool {
	for _, v := range s {
		if !p(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element of s satisfies p.
// False for an empty sequence.
func Any[T any](s []T, p func(T) bool) bool {
	for _, v := range s {
		if p(v) {
			return true
		}
	}
	return false
}

// None reports whether no element of s satisfies p.
// True for an empty sequence.
func None[T any](s []T, p func(T) bool) bool {
	for _, v := range s {
		if p(v) {
			return false
		}
	}
	return true
}

// One reports whether exactly one element of s satisfies p.
func One[T any](s []T, p func(T) bool) bool {
	found := false
	for _, v := range s {
		if p(v) {
			if found {
				return false
			}
			found = true
		}
	}
	return found
}

// AllEqual reports whether every element of s equals val.
func AllEqual[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v != val {
			return false
		}
	}
	return true
}

// AnyEqual reports whether at least one element of s equals val.
func AnyEqual[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// NoneEqual reports whether no element of s equals val.
func NoneEqual[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return false
		}
	}
	return true
}

// OneEqual reports whether exactly one element of s equals val.
func OneEqual[T comparable](s []T, val T) bool {
	found := false
	for _, v := range s {
		if v == val {
			if found {
				return false
			}
			found = true
		}
	}
	return found
}
