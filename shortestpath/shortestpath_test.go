package shortestpath_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/shortestpath"
	"github.com/stretchr/testify/require"
)

func undirected(n int, edges [][3]float64) *graph.AdjacencyList {
	g := graph.NewAdjacencyList(n)
	for _, e := range edges {
		u, v, w := int(e[0]), int(e[1]), e[2]
		g.AddEdge(u, v, w)
		g.AddEdge(v, u, w)
	}
	return g
}

func TestDijkstra_S2FromCatalogue(t *testing.T) {
	g := undirected(3, [][3]float64{{0, 1, 1}, {0, 2, 3}, {1, 2, 1}})
	ts, err := shortestpath.DijkstraSparse(context.Background(), g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, []float64{ts.Label(0), ts.Label(1), ts.Label(2)})

	ts2, err := shortestpath.DijkstraDense(context.Background(), g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, []float64{ts2.Label(0), ts2.Label(1), ts2.Label(2)})
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	g := graph.NewAdjacencyList(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -1)
	g.AddEdge(2, 1, -1)

	_, provoking, hasCycle, err := shortestpath.BellmanFord(context.Background(), g, 0)
	require.NoError(t, err)
	require.True(t, hasCycle)
	require.NotEqual(t, -1, provoking)
}

func TestBellmanFord_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	g := undirected(3, [][3]float64{{0, 1, 1}, {0, 2, 3}, {1, 2, 1}})
	ts, _, hasCycle, err := shortestpath.BellmanFord(context.Background(), g, 0)
	require.NoError(t, err)
	require.False(t, hasCycle)
	require.Equal(t, 0.0, ts.Label(0))
	require.Equal(t, 1.0, ts.Label(1))
	require.Equal(t, 2.0, ts.Label(2))
}

func TestFloydWarshall_AllPairs(t *testing.T) {
	g := undirected(3, [][3]float64{{0, 1, 1}, {0, 2, 3}, {1, 2, 1}})
	trees, _, hasCycle, err := shortestpath.FloydWarshall(context.Background(), g, []int{0, 1, 2})
	require.NoError(t, err)
	require.False(t, hasCycle)
	require.Equal(t, 2.0, trees[0].Label(2))
	require.Equal(t, 1.0, trees[1].Label(2))
}

func TestAStar_ReachesGoal(t *testing.T) {
	g := undirected(3, [][3]float64{{0, 1, 1}, {1, 2, 1}, {0, 2, 5}})
	zero := func(graph.Node) float64 { return 0 }
	ts, reached, err := shortestpath.AStar(context.Background(), g, 0, 2, zero)
	require.NoError(t, err)
	require.True(t, reached)
	require.Equal(t, 2.0, ts.Label(2))
}
