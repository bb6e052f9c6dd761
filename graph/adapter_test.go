package graph_test

import (
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/stretchr/testify/require"
)

func buildTriangle() *graph.AdjacencyList {
	a := graph.NewAdjacencyList(3)
	a.AddEdge(0, 1, 1)
	a.AddEdge(0, 2, 1)
	a.AddEdge(1, 2, 1)
	return a
}

func TestFilteredView_SkipsRejectedEdges(t *testing.T) {
	base := buildTriangle()
	fv := graph.NewFilteredView(base, func(n, e graph.EdgeRef) bool {
		return base.Target(n, e) != 2
	})
	var targets []graph.Node
	for e := fv.EdgeBegin(0); !fv.EdgeEnd(0, e); fv.EdgeInc(0, &e) {
		targets = append(targets, fv.Target(0, e))
	}
	require.Equal(t, []graph.Node{1}, targets)
}

func TestJoinedView_ConcatenatesBothHalves(t *testing.T) {
	a := graph.NewAdjacencyList(2)
	a.AddEdge(0, 1, 1)
	b := graph.NewAdjacencyList(2)
	b.AddEdge(0, 1, 2)

	jv := graph.NewJoinedView(a, b)
	count := 0
	for e := jv.EdgeBegin(0); !jv.EdgeEnd(0, e); jv.EdgeInc(0, &e) {
		require.Equal(t, graph.Node(1), jv.Target(0, e))
		count++
	}
	require.Equal(t, 2, count)
}
