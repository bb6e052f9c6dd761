package search_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
	"github.com/stretchr/testify/require"
)

func TestPrioritySearch_DijkstraShortestPaths(t *testing.T) {
	// S2 from the acceptance catalogue: (0,1,1) (0,2,3) (1,2,1), n=3, undirected.
	g := graph.NewAdjacencyList(3)
	addUndirected := func(u, v int, w float64) {
		g.AddEdge(u, v, w)
		g.AddEdge(v, u, w)
	}
	addUndirected(0, 1, 1)
	addUndirected(0, 2, 3)
	addUndirected(1, 2, 1)

	ts, disc, err := search.PrioritySearch(context.Background(), g, 0, search.FullSearch(), search.MinSum{}, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewIndexedHeap(less)
	})
	require.NoError(t, err)
	require.Equal(t, search.Completed, disc)
	require.Equal(t, 0.0, ts.Label(0))
	require.Equal(t, 1.0, ts.Label(1))
	require.Equal(t, 2.0, ts.Label(2))
}

func TestPrioritySearch_OptDistOnlyForClosed(t *testing.T) {
	g := graph.NewAdjacencyList(2)
	ts, _, err := search.PrioritySearch(context.Background(), g, 0, search.FullSearch(), search.MinSum{}, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewArrayQueue(less)
	})
	require.NoError(t, err)
	_, ok := ts.OptDist(0)
	require.True(t, ok)
	_, ok = ts.OptDist(1)
	require.False(t, ok)
}
