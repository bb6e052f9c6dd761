package mst_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/mst"
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

func TestKruskal_S3FromCatalogue(t *testing.T) {
	g := undirected(4, [][3]float64{{0, 1, 1}, {1, 2, 3}, {2, 0, 1}, {3, 2, 2}})
	res, err := mst.Kruskal(context.Background(), g, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Weight)
}

func TestPrimAndKruskal_AgreeOnWeight(t *testing.T) {
	g := undirected(4, [][3]float64{{0, 1, 1}, {1, 2, 3}, {2, 0, 1}, {3, 2, 2}})

	_, primRes, err := mst.PrimSparse(context.Background(), g, 0)
	require.NoError(t, err)

	kruskalRes, err := mst.Kruskal(context.Background(), g, 0, nil)
	require.NoError(t, err)

	require.Equal(t, kruskalRes.Weight, primRes.Weight)
	require.Equal(t, kruskalRes.Nodes, primRes.Nodes)
}

func TestPrimDenseAndSparse_Agree(t *testing.T) {
	g := undirected(4, [][3]float64{{0, 1, 1}, {1, 2, 3}, {2, 0, 1}, {3, 2, 2}})

	_, dense, err := mst.PrimDense(context.Background(), g, 0)
	require.NoError(t, err)
	_, sparse, err := mst.PrimSparse(context.Background(), g, 0)
	require.NoError(t, err)
	require.Equal(t, dense.Weight, sparse.Weight)
}

func TestKruskal_EmitCallback(t *testing.T) {
	g := undirected(3, [][3]float64{{0, 1, 2}, {1, 2, 1}, {0, 2, 5}})
	var emitted int
	res, err := mst.Kruskal(context.Background(), g, 0, func(u, v graph.Node, e graph.EdgeRef, w float64) {
		emitted++
	})
	require.NoError(t, err)
	require.Equal(t, 2, emitted)
	require.Equal(t, 3.0, res.Weight)
}
