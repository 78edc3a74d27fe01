package list

import "iter"

// Single is a singly-linked chain that also contains a reference to
// the last node for quick inserts at the tail and removals at the
// head. A zero value Single is ready to use.
type Single[T any] struct {
	head, tail *Node[T]
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	if ls.tail == nil {
		ls.head = &Node[T]{Val: v}
		ls.tail = ls.head
		return
	}

	ls.tail = ls.tail.InsertAfter(v)
}

// Peek returns the value of the head node. It returns false if the
// list is empty.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Pop removes the current head node from the list and returns its
// value. It returns false if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}

	v = n.Val
	*n = Node[T]{}
	return v, true
}

// Clear removes every node from the list.
func (ls *Single[T]) Clear() {
	for ls.head != nil {
		n := ls.head
		ls.head = n.next
		*n = Node[T]{}
	}
	ls.tail = nil
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}
