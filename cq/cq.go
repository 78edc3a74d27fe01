// Package cq implements a concurrent FIFO hand-off on top of
// [xlist.Queue].
package cq

import (
	"context"
	"iter"
	"log/slog"
	"sync"

	"deedles.dev/xlist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. Values sent to Add are buffered without limit until they are
// received from Get. A zero value Queue is ready to use.
//
// A Queue is started by calling any of its methods, so a copy of a
// Queue made before those methods are called is a completely
// independent Queue.
type Queue[T any] struct {
	start sync.Once
	stop  stopper

	exited chan struct{}
	add    chan T
	get    chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.exited = make(chan struct{})
		q.add = make(chan T)
		q.get = make(chan T)

		go q.run(q.stop.Done())
	})
}

// Stop stops the queue. Any values still buffered are discarded. It is
// safe to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.stop.Stop()
}

// Done returns a channel that is closed once the queue has stopped,
// either because of a call to Stop or because the Add channel was
// closed and the remaining values were all received.
func (q *Queue[T]) Done() <-chan struct{} {
	q.init()
	return q.exited
}

// Add returns a channel that enqueues values sent to it. Closing this
// channel will cause the channel returned by Get to be closed once the
// Queue's contents are emptied, similar to how a regular channel
// works. Sends on the channel block forever once the Queue has
// stopped.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

// Values returns an iterator that yields values from the queue until
// either the queue is stopped or the context is canceled.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	q.init()
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-q.get:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}

func (q *Queue[T]) run(done <-chan struct{}) {
	var buf xlist.Queue[T]
	add := q.add
	var get chan T

	defer func() {
		close(q.get)
		if n := buf.Len(); n > 0 {
			slog.Debug("queue stopped with values still buffered", "discarded", n)
		}
		close(q.exited)
	}()

	for {
		next, _ := buf.Peek()

		select {
		case <-done:
			return

		case v, ok := <-add:
			if !ok {
				if buf.IsEmpty() {
					return
				}

				add = nil
				continue
			}

			buf.Enqueue(v)
			get = q.get

		case get <- next:
			buf.Dequeue()
			if buf.IsEmpty() {
				if add == nil {
					return
				}

				get = nil
			}
		}
	}
}
