package xlist

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xlist/internal/list"
)

// List is a singly-linked list addressed by 1-based position. The
// list owns a sentinel node that holds no data. Every element is a
// node reachable from the sentinel, so the length of the list is
// counted rather than stored.
//
// A zero value List is empty and ready to use.
type List[T any] struct {
	_    noCopy
	head list.Node[T]
}

// NewList returns a new, empty list.
func NewList[T any]() *List[T] {
	return new(List[T])
}

// seek returns the node at position i, where the sentinel is at
// position 0. It returns nil if the list is shorter than i.
func (ls *List[T]) seek(i int) *list.Node[T] {
	n := &ls.head
	for range i {
		n = n.Next()
		if n == nil {
			return nil
		}
	}
	return n
}

// IsEmpty returns true if the list contains no elements.
func (ls *List[T]) IsEmpty() bool {
	return ls.head.Next() == nil
}

// Len counts the elements in the list. It runs in linear time.
func (ls *List[T]) Len() (n int) {
	for cur := ls.head.Next(); cur != nil; cur = cur.Next() {
		n++
	}
	return n
}

// InsertFront adds v as the first element of the list.
func (ls *List[T]) InsertFront(v T) {
	ls.head.InsertAfter(v)
}

// InsertAt inserts v so that it becomes the element at position i.
// Valid positions are 1 through Len()+1, the latter appending v to the
// end of the list. If i is out of that range, the list is left
// unchanged and an [*IndexError] is returned.
func (ls *List[T]) InsertAt(i int, v T) error {
	var prev *list.Node[T]
	if i >= 1 {
		prev = ls.seek(i - 1)
	}
	if prev == nil {
		return &IndexError{Index: i, Max: ls.Len() + 1}
	}

	prev.InsertAfter(v)
	return nil
}

// RemoveFront removes the first element of the list and returns it.
// It returns [ErrEmpty] if there is nothing to remove.
func (ls *List[T]) RemoveFront() (v T, err error) {
	n := ls.head.RemoveAfter()
	if n == nil {
		return v, ErrEmpty
	}
	return n.Val, nil
}

// RemoveAt removes the element at position i, which must be between 1
// and Len(), and returns it. Otherwise, the list is left unchanged and
// an [*IndexError] is returned.
func (ls *List[T]) RemoveAt(i int) (v T, err error) {
	var prev *list.Node[T]
	if i >= 1 {
		prev = ls.seek(i - 1)
	}
	if prev == nil || prev.Next() == nil {
		return v, &IndexError{Index: i, Max: ls.Len()}
	}

	return prev.RemoveAfter().Val, nil
}

// Get returns the element at position i. It follows the same rules as
// [List.RemoveAt] but does not modify the list.
func (ls *List[T]) Get(i int) (v T, err error) {
	n, err := ls.node(i)
	if err != nil {
		return v, err
	}
	return n.Val, nil
}

// Set replaces the element at position i with v.
func (ls *List[T]) Set(i int, v T) error {
	n, err := ls.node(i)
	if err != nil {
		return err
	}

	n.Val = v
	return nil
}

func (ls *List[T]) node(i int) (*list.Node[T], error) {
	var n *list.Node[T]
	if i >= 1 {
		n = ls.seek(i)
	}
	if n == nil {
		return nil, &IndexError{Index: i, Max: ls.Len()}
	}
	return n, nil
}

// Find returns the position of the first element v for which
// match(v, target) returns true. If no element matches, including when
// the list is empty, it returns -1.
func (ls *List[T]) Find(match func(v, target T) bool, target T) int {
	i := 1
	for n := ls.head.Next(); n != nil; n = n.Next() {
		if match(n.Val, target) {
			return i
		}
		i++
	}
	return -1
}

// Each calls visit with every element of the list in order from first
// to last. visit must not modify the list.
func (ls *List[T]) Each(visit func(T)) {
	for n := ls.head.Next(); n != nil; n = n.Next() {
		visit(n.Val)
	}
}

// All returns an iterator over the elements of the list. The list
// must not be modified during iteration.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ls.head.Next(); n != nil; n = n.Next() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Clear removes every element from the list.
func (ls *List[T]) Clear() {
	for ls.head.RemoveAfter() != nil {
	}
}

func (ls *List[T]) String() string {
	return fmt.Sprint(slices.Collect(ls.All()))
}
