package xlist

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xlist/internal/list"
)

// A Queue collects values and returns them in FIFO order. Values are
// always added after the newest element and removed from the oldest.
//
// A zero value Queue is ready to use.
type Queue[T any] struct {
	_ noCopy

	s list.Single[T]
	n int
}

// NewQueue returns a new, empty queue.
func NewQueue[T any]() *Queue[T] {
	return new(Queue[T])
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.s.Enqueue(v)
	q.n++
}

// Dequeue removes the value at the front of the queue and returns it.
// It returns [ErrEmpty] if the queue has nothing in it.
func (q *Queue[T]) Dequeue() (v T, err error) {
	v, ok := q.s.Pop()
	if !ok {
		return v, ErrEmpty
	}

	q.n--
	return v, nil
}

// Peek returns the value at the front of the queue without removing
// it. It returns false if the queue is empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	return q.s.Peek()
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// IsEmpty returns true if the queue contains no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.n == 0
}

// Clear releases every value held by the queue. The queue can be used
// again afterwards.
func (q *Queue[T]) Clear() {
	q.s.Clear()
	q.n = 0
}

// All returns an iterator over the values in the queue from oldest to
// newest without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.s.All()
}

func (q *Queue[T]) String() string {
	return fmt.Sprint(slices.Collect(q.All()))
}
