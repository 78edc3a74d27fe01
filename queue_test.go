package xlist_test

import (
	"slices"
	"testing"

	"deedles.dev/xlist"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q xlist.Queue[int]
	require.True(t, q.IsEmpty())

	want := []int{4, 8, 15, 16, 23, 42}
	for i, v := range want {
		q.Enqueue(v)
		require.Equal(t, i+1, q.Len())
	}
	require.Equal(t, want, slices.Collect(q.All()))

	for i, w := range want {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, w, v)
		require.Equal(t, len(want)-i-1, q.Len())
	}
	require.True(t, q.IsEmpty())
}

func TestQueueEmpty(t *testing.T) {
	q := xlist.NewQueue[string]()

	_, ok := q.Peek()
	require.False(t, ok)

	v, err := q.Dequeue()
	require.ErrorIs(t, err, xlist.ErrEmpty)
	require.Zero(t, v)
	require.Equal(t, 0, q.Len())
}

func TestQueueInterleaved(t *testing.T) {
	var q xlist.Queue[int]
	q.Enqueue(1)
	q.Enqueue(2)

	v, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	q.Enqueue(3)
	v, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, "[2 3]", q.String())

	for _, w := range []int{2, 3} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, w, v)
	}

	q.Enqueue(4)
	require.Equal(t, "[4]", q.String())
}

func TestQueueClear(t *testing.T) {
	var q xlist.Queue[int]
	for i := range 10 {
		q.Enqueue(i)
	}

	q.Clear()
	require.Equal(t, 0, q.Len())
	_, err := q.Dequeue()
	require.ErrorIs(t, err, xlist.ErrEmpty)

	q.Enqueue(1)
	require.Equal(t, 1, q.Len())
}

func BenchmarkQueue(b *testing.B) {
	var q xlist.Queue[int]
	for i := range b.N {
		q.Enqueue(i)
		q.Dequeue()
	}
}
