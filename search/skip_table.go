package search

// skipTable maps a symbol to a pattern-derived offset. Built once at
// matcher construction, read-only afterwards.
type skipTable[T comparable] interface {
	insert(sym T, val int)
	lookup(sym T) int
}

// newSkipTable picks the table representation for the symbol type.
// Single-byte domains get a dense array covering the whole domain;
// everything else gets a map holding only the symbols present in the
// pattern, with def returned for absent symbols.
func newSkipTable[T comparable](patLen, def int) skipTable[T] {
	var zero T
	switch any(zero).(type) {
	case byte:
		return newDenseTable[T](def, func(sym T) int { return int(any(sym).(byte)) })
	case int8:
		return newDenseTable[T](def, func(sym T) int { return int(uint8(any(sym).(int8))) })
	}
	return &sparseTable[T]{def: def, m: make(map[T]int, patLen)}
}

// denseTable covers a full one-byte symbol domain with a fixed array.
// Costs 256 slots regardless of pattern length; lookups are one index.
type denseTable[T comparable] struct {
	slots [256]int
	index func(T) int
}

func newDenseTable[T comparable](def int, index func(T) int) *denseTable[T] {
	t := &denseTable[T]{index: index}
	for i := range t.slots {
		t.slots[i] = def
	}
	return t
}

func (t *denseTable[T]) insert(sym T, val int) { t.slots[t.index(sym)] = val }

func (t *denseTable[T]) lookup(sym T) int { return t.slots[t.index(sym)] }

// sparseTable stores only the symbols that occur in the pattern.
type sparseTable[T comparable] struct {
	def int
	m   map[T]int
}

func (t *sparseTable[T]) insert(sym T, val int) { t.m[sym] = val }

func (t *sparseTable[T]) lookup(sym T) int {
	if val, ok := t.m[sym]; ok {
		return val
	}
	return t.def
}
