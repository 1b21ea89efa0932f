package set

import (
	"github.com/denismitr/dll"
	"golang.org/x/exp/constraints"
)

type (
	LessFn[T comparable] func(a, b T) (less bool)

	// Order is a sort direction
	Order uint8
)

const (
	DescOrder Order = iota
	AscOrder
)

// SortedFunc - returns the items ordered by lessFn; the set keeps its own order
func (s *Set[T]) SortedFunc(lessFn LessFn[T]) []T {
	l := dll.New[T]()
	for _, item := range s.Items() {
		l.PushTail(dll.NewElement(item))
	}

	l.Sort(dll.LessFn[T](lessFn))

	items := make([]T, 0, l.Len())
	for curr := l.Head(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value())
	}

	return items
}

// Sorted returns the items of s in ascending or descending order
func Sorted[T constraints.Ordered](s *Set[T], order Order) []T {
	if order == DescOrder {
		return s.SortedFunc(func(a, b T) bool { return a > b })
	}

	return s.SortedFunc(func(a, b T) bool { return a < b })
}
