package set

import "iter"

type (
	ForEachFn[T comparable]      func(item T)
	ForEachErrFn[T comparable]   func(item T) error
	ForEachUntilFn[T comparable] func(item T) bool
	FilterFn[T comparable]       func(item T) bool
)

// ForEach calls f once for every item in insertion order.
// Items are taken before the first call, so f may modify the set.
func (s *Set[T]) ForEach(f ForEachFn[T]) {
	for _, item := range s.Items() {
		f(item)
	}
}

// ForEachErr is like ForEach, but stops on the first error returned by f
// and hands that error back as is.
func (s *Set[T]) ForEachErr(f ForEachErrFn[T]) error {
	for _, item := range s.Items() {
		if err := f(item); err != nil {
			return err
		}
	}

	return nil
}

// ForEachUntil visits items in insertion order for as long as f returns true
func (s *Set[T]) ForEachUntil(f ForEachUntilFn[T]) *Set[T] {
	for _, item := range s.Items() {
		if canGoOn := f(item); !canGoOn {
			break
		}
	}

	return s
}

// Filter - returns a new set with the items for which f returns true
func (s *Set[T]) Filter(f FilterFn[T]) *Set[T] {
	result := New[T]()
	for _, item := range s.Items() {
		if f(item) {
			result.Add(item)
		}
	}

	return result
}

// All returns an iterator over a snapshot of the items in insertion order
func (s *Set[T]) All() iter.Seq[T] {
	items := s.Items()
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
