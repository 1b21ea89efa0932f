package set

import (
	"fmt"
	"strings"

	"github.com/denismitr/dll"
	"github.com/pkg/errors"
)

// Set - is a mutable collection of unique items that remembers
// the order in which items were first added.
//
// Items are compared the way Go map keys are: by value for basic types,
// structs and arrays, by identity for pointers and channels.
// A Set is not safe for concurrent use.
type Set[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]

	// dynamic is true when T can carry values with an unhashable dynamic type
	dynamic bool
}

// New creates a set holding the distinct items in the order they are first seen
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		m:       make(map[T]*dll.Element[T], len(items)),
		dynamic: mayHoldUnhashable[T](),
	}
	s.resetList()

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// resetList starts a fresh order list with a sentinel at its head.
// Real items always sit after the sentinel, so removing one of them
// never unlinks the head of the list.
func (s *Set[T]) resetList() {
	s.list = dll.New[T]()
	s.list.PushTail(dll.NewElement(zero[T]()))
}

func (s *Set[T]) head() *dll.Element[T] {
	return s.list.Head().Next()
}

// Add is idempotent: an item that is already present keeps its position
func (s *Set[T]) Add(item T) *Set[T] {
	if s.dynamic && !isHashable(item) {
		panic(errors.Wrapf(ErrUnhashable, "add %T", item))
	}

	if _, found := s.m[item]; !found {
		el := dll.NewElement(item)
		s.m[item] = el
		s.list.PushTail(el)
	}

	return s
}

// Delete removes the item if present
func (s *Set[T]) Delete(item T) *Set[T] {
	if s.dynamic && !isHashable(item) {
		return s
	}

	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
	}

	return s
}

func (s *Set[T]) Has(item T) bool {
	if s == nil || (s.dynamic && !isHashable(item)) {
		return false
	}

	_, ok := s.m[item]
	return ok
}

func (s *Set[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.resetList()
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Items returns a copy of the items in insertion order.
// The result is never nil and is safe to modify.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.Len())
	if s == nil {
		return items
	}

	for curr := s.head(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value())
	}

	return items
}

// Clone - creates a new set with the same items in the same order
func (s *Set[T]) Clone() *Set[T] {
	return New(s.Items()...)
}

// First returns the oldest item in the set
func (s *Set[T]) First() (T, error) {
	if s.IsEmpty() {
		return zero[T](), errors.Wrap(ErrEmpty, "first")
	}

	return s.head().Value(), nil
}

// Last returns the most recently added item in the set
func (s *Set[T]) Last() (T, error) {
	if s.IsEmpty() {
		return zero[T](), errors.Wrap(ErrEmpty, "last")
	}

	return s.list.Tail().Value(), nil
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("Set[")
	for i, item := range s.Items() {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(item))
	}
	b.WriteString("]")
	return b.String()
}

func zero[T any]() T {
	var z T
	return z
}
