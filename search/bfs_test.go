package search_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
	"github.com/stretchr/testify/require"
)

func undirectedChain(n int) *graph.AdjacencyList {
	a := graph.NewAdjacencyList(n)
	for i := 0; i < n-1; i++ {
		a.AddEdge(i, i+1, 1)
		a.AddEdge(i+1, i, 1)
	}
	return a
}

func TestBFS_LabelsAreStepCounts(t *testing.T) {
	g := undirectedChain(4)
	ts, disc, err := search.BFS(context.Background(), g, 0, search.FullSearch(), true)
	require.NoError(t, err)
	require.Equal(t, search.Completed, disc)
	for i := 0; i < 4; i++ {
		require.Equal(t, i, ts.Label(i))
	}
}

func TestBFS_PathFromRoot(t *testing.T) {
	g := undirectedChain(3)
	ts, _, err := search.BFS(context.Background(), g, 0, search.FullSearch(), true)
	require.NoError(t, err)
	path, ok := ts.PathFromRoot(2)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestBFS_AbortOnEdgeProcess(t *testing.T) {
	g := undirectedChain(3)
	adapter := &search.Hooks{
		Process: func(n int, e graph.EdgeRef) bool { return g.Target(n, e) != 2 },
	}
	ts, disc, err := search.BFS(context.Background(), g, 0, adapter, true)
	require.NoError(t, err)
	require.Equal(t, search.AbortedEdgeProcess, disc)
	require.False(t, ts.InTree(2))
}

func TestBFS_CancelledContext(t *testing.T) {
	g := undirectedChain(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := search.BFS(ctx, g, 0, search.FullSearch(), true)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_DisconnectedComponentNotInTree(t *testing.T) {
	g := graph.NewAdjacencyList(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 0, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 2, 1)
	ts, _, err := search.BFS(context.Background(), g, 0, search.FullSearch(), true)
	require.NoError(t, err)
	require.True(t, ts.InTree(1))
	require.False(t, ts.InTree(2))
	require.False(t, ts.InTree(3))
}
