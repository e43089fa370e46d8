package iteratable

// Set is an insertion-ordered collection of unique items, where uniqueness
// is decided by a caller-supplied key rather than Go equality on the item
// itself (items are frequently pointers whose identity we don't want, and
// whose pointee isn't comparable).
//
// All operations are destructive, as advertised by the package doc: Add
// mutates the set in place and there is no copy-on-write.
type Set[T any, K comparable] struct {
	items []T
	index map[K]int
	keyOf func(T) K
}

// NewSet creates an empty Set, using keyOf to compute the identity of each
// item added to it.
func NewSet[T any, K comparable](keyOf func(T) K) *Set[T, K] {
	return &Set[T, K]{index: make(map[K]int), keyOf: keyOf}
}

// Add appends item to the set unless an item with the same key is already
// present, in which case it reports false and leaves the set unchanged.
// New items are always appended, never inserted: insertion order is part
// of the set's observable behaviour (§4.2).
func (s *Set[T, K]) Add(item T) bool {
	k := s.keyOf(item)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Len returns the number of items in the set.
func (s *Set[T, K]) Len() int {
	return len(s.items)
}

// At returns the i-th item, in insertion order.
func (s *Set[T, K]) At(i int) T {
	return s.items[i]
}

// Items returns every item, in insertion order. Callers must not mutate
// the returned slice.
func (s *Set[T, K]) Items() []T {
	return s.items
}
