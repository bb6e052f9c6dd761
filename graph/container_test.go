package graph_test

import (
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/stretchr/testify/require"
)

func TestContainer_AddVertexDuplicate(t *testing.T) {
	c := graph.NewContainer()
	require.NoError(t, c.AddVertex("A"))
	require.ErrorIs(t, c.AddVertex("A"), graph.ErrVertexExists)
}

func TestContainer_BuildUndirected(t *testing.T) {
	c := graph.NewContainer()
	_, err := c.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = c.AddEdge("B", "C", 5)
	require.NoError(t, err)

	view, idOf, nodeOf := c.Build()
	require.Equal(t, 3, view.NumNodes())

	a, b, cc := idOf["A"], idOf["B"], idOf["C"]
	require.Equal(t, "A", nodeOf[a])

	foundAB, foundBA := false, false
	for e := view.EdgeBegin(a); !view.EdgeEnd(a, e); view.EdgeInc(a, &e) {
		if view.Target(a, e) == b {
			foundAB = true
			require.Equal(t, 3.0, view.Weight(a, e))
		}
	}
	for e := view.EdgeBegin(b); !view.EdgeEnd(b, e); view.EdgeInc(b, &e) {
		if view.Target(b, e) == a {
			foundBA = true
		}
	}
	require.True(t, foundAB)
	require.True(t, foundBA, "undirected container must mirror edges both ways")
	_ = cc
}

func TestContainer_DirectedNoMirror(t *testing.T) {
	c := graph.NewContainer(graph.WithDirected())
	_, err := c.AddEdge("A", "B", 1)
	require.NoError(t, err)

	view, idOf, _ := c.Build()
	b := idOf["B"]
	for e := view.EdgeBegin(b); !view.EdgeEnd(b, e); view.EdgeInc(b, &e) {
		t.Fatalf("directed container must not mirror edge B->A, found target %d", view.Target(b, e))
	}
}

func TestContainer_RemoveVertexCascadesEdges(t *testing.T) {
	var removed []string
	c := graph.NewContainer(graph.WithDirected(), graph.WithPostRemoveHook(func(kind, id string) {
		removed = append(removed, kind+":"+id)
	}))
	_, _ = c.AddEdge("A", "B", 1)
	_, _ = c.AddEdge("B", "C", 1)
	require.NoError(t, c.RemoveVertex("B"))
	require.False(t, c.HasVertex("B"))

	view, idOf, _ := c.Build()
	a := idOf["A"]
	require.True(t, view.EdgeEnd(a, view.EdgeBegin(a)), "A's edge to removed B must be gone")
	require.NotEmpty(t, removed)
}

func TestContainer_SelfLoopRejectedByDefault(t *testing.T) {
	c := graph.NewContainer()
	_, err := c.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestContainer_MultiEdgeReplaceOrAdd(t *testing.T) {
	c := graph.NewContainer(graph.WithDirected())
	_, err := c.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = c.AddEdge("A", "B", 2)
	require.NoError(t, err)

	view, idOf, _ := c.Build()
	a, b := idOf["A"], idOf["B"]
	count := 0
	for e := view.EdgeBegin(a); !view.EdgeEnd(a, e); view.EdgeInc(a, &e) {
		if view.Target(a, e) == b {
			count++
			require.Equal(t, 2.0, view.Weight(a, e))
		}
	}
	require.Equal(t, 1, count, "without WithMultiEdges, AddEdge replaces the previous edge")
}
