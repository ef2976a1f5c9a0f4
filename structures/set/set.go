package set

// Set formalizes set semantics for comparable values.
// The zero value is a usable, empty set for reads; use [New] before writing.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether val is a member of the [Set].
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Insert adds val to the [Set] and reports whether it was newly added.
// A false result means the value was already present, which makes duplicate detection a single call.
func (s Set[T]) Insert(val T) bool {
	if s.Has(val) {
		return false
	}
	s[val] = struct{}{}
	return true
}

// FirstDuplicate walks vals in order and returns the first value that was seen before.
// The bool result is false if every value is distinct.
func FirstDuplicate[T comparable](vals []T) (T, bool) {
	seen := make(Set[T], len(vals))
	for _, v := range vals {
		if !seen.Insert(v) {
			return v, true
		}
	}
	var mt T
	return mt, false
}
