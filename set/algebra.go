package set

// Union adds every item of other that is not present yet
// and returns the same, modified, set.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	if other == s {
		return s
	}

	for _, item := range other.Items() {
		s.Add(item)
	}

	return s
}

// Difference removes every item that is also present in other
// and returns the same, modified, set. Clone the set first
// to keep the original intact.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	if other == s {
		s.Clear()
		return s
	}

	curr := s.head()
	for curr != nil {
		next := curr.Next()
		if item := curr.Value(); other.Has(item) {
			s.Delete(item)
		}
		curr = next
	}

	return s
}

// Intersection - returns a new set with the items present in both sets,
// in the order of the receiver. Neither set is modified.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := New[T]()
	for curr := s.head(); curr != nil; curr = curr.Next() {
		if item := curr.Value(); other.Has(item) {
			result.Add(item)
		}
	}

	return result
}

// Subset reports whether every item of s is present in other.
// The empty set is a subset of any set.
func (s *Set[T]) Subset(other *Set[T]) bool {
	if s.IsEmpty() {
		return true
	}

	if s.Len() > other.Len() {
		return false
	}

	for curr := s.head(); curr != nil; curr = curr.Next() {
		if !other.Has(curr.Value()) {
			return false
		}
	}

	return true
}

// Equal reports whether both sets hold the same items, regardless of order
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && s.Subset(other)
}
