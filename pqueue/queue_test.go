package pqueue_test

import (
	"testing"

	"github.com/gographlib/algo/pqueue"
	"github.com/stretchr/testify/require"
)

func popAll(q pqueue.Queue) []int {
	var out []int
	for !q.Empty() {
		out = append(out, q.Pop())
	}
	return out
}

func TestArrayQueue_PopsInPriorityOrder(t *testing.T) {
	labels := map[int]int{0: 5, 1: 1, 2: 3}
	q := pqueue.NewArrayQueue(func(a, b int) bool { return labels[a] < labels[b] })
	q.Push(0)
	q.Push(1)
	q.Push(2)
	require.Equal(t, []int{1, 2, 0}, popAll(q))
}

func TestIndexedHeap_PopsInPriorityOrder(t *testing.T) {
	labels := map[int]int{0: 5, 1: 1, 2: 3, 3: 2}
	q := pqueue.NewIndexedHeap(func(a, b int) bool { return labels[a] < labels[b] })
	for _, n := range []int{0, 1, 2, 3} {
		q.Push(n)
	}
	require.Equal(t, []int{1, 3, 2, 0}, popAll(q))
}

func TestIndexedHeap_RebuildAfterDecrease(t *testing.T) {
	labels := map[int]int{0: 10, 1: 10, 2: 10}
	q := pqueue.NewIndexedHeap(func(a, b int) bool { return labels[a] < labels[b] })
	q.Push(0)
	q.Push(1)
	q.Push(2)

	labels[2] = 1
	q.Rebuild(2)
	require.Equal(t, 2, q.Pop())
}

func TestIndexedHeap_Contains(t *testing.T) {
	q := pqueue.NewIndexedHeap(func(a, b int) bool { return a < b })
	q.Push(7)
	require.True(t, q.Contains(7))
	q.Pop()
	require.False(t, q.Contains(7))
}
