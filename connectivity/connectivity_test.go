package connectivity_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/connectivity"
	"github.com/gographlib/algo/graph"
	"github.com/stretchr/testify/require"
)

func undirected(n int, edges [][2]int) *graph.AdjacencyList {
	g := graph.NewAdjacencyList(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1], 1)
		g.AddEdge(e[1], e[0], 1)
	}
	return g
}

func directed(n int, edges [][2]int) *graph.AdjacencyList {
	g := graph.NewAdjacencyList(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1], 1)
	}
	return g
}

func TestBipartite_S4FromCatalogue(t *testing.T) {
	g := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	_, ok, err := connectivity.Bipartite(context.Background(), g, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestArticulationPoints_BridgeGraph(t *testing.T) {
	// 0-1-2 triangle, plus a bridge 2-3
	g := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	res, err := connectivity.ArticulationPoints(context.Background(), g, 0)
	require.NoError(t, err)
	require.True(t, res.ArticulationPoints[2])
	require.Contains(t, res.Bridges, [2]int{2, 3})
}

func TestTarjanSCC_S5FromCatalogue(t *testing.T) {
	g := directed(4, [][2]int{{1, 0}, {0, 2}, {2, 1}, {2, 3}})
	label, num, err := connectivity.TarjanSCC(context.Background(), g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, label[0], label[1])
	require.Equal(t, label[1], label[2])
	require.NotEqual(t, label[0], label[3])
	require.Equal(t, 2, num)
}

func TestKosarajuSCC_AgreesWithTarjan(t *testing.T) {
	g := directed(4, [][2]int{{1, 0}, {0, 2}, {2, 1}, {2, 3}})
	tarjanLabel, tarjanNum, err := connectivity.TarjanSCC(context.Background(), g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	kosLabel, kosNum, err := connectivity.KosarajuSCC(context.Background(), g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, tarjanNum, kosNum)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, tarjanLabel[i] == tarjanLabel[j], kosLabel[i] == kosLabel[j])
		}
	}
}

func TestTopologicalSort_RespectsEdgeOrder(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	order, err := connectivity.TopologicalSort(context.Background(), g, 0, false)
	require.NoError(t, err)
	pos := make(map[int]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	require.Less(t, pos[0], pos[1])
	require.Less(t, pos[0], pos[2])
	require.Less(t, pos[1], pos[3])
	require.Less(t, pos[2], pos[3])

	isDAG, err := connectivity.IsDAG(context.Background(), g)
	require.NoError(t, err)
	require.True(t, isDAG)
}

func TestIsDAG_DetectsCycle(t *testing.T) {
	g := directed(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	isDAG, err := connectivity.IsDAG(context.Background(), g)
	require.NoError(t, err)
	require.False(t, isDAG)
}

func TestEulerianTour_UndirectedCycle(t *testing.T) {
	// square: every vertex has degree 2, so an Eulerian circuit exists
	g := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	ok, err := connectivity.UndirectedCycleExists(context.Background(), g, 0)
	require.NoError(t, err)
	require.True(t, ok)

	steps, complete, err := connectivity.EulerianTour(context.Background(), g, 0, false)
	require.NoError(t, err)
	require.True(t, complete)
	require.Len(t, steps, 4)
	require.Equal(t, 0, steps[0].From)
	require.Equal(t, 0, steps[len(steps)-1].To)
}

func TestEulerianTour_DirectedTrail(t *testing.T) {
	// 0->1->2->0 plus 0->3: node 0 has out-in = 2-1=1, node 3 has in-out=1
	g := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}})
	source, sink, ok, err := connectivity.DirectedTourExists(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, source)
	require.Equal(t, 3, sink)

	steps, complete, err := connectivity.EulerianTour(context.Background(), g, source, true)
	require.NoError(t, err)
	require.True(t, complete)
	require.Len(t, steps, 4)
	require.Equal(t, sink, steps[len(steps)-1].To)
}
