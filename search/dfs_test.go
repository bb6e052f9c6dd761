package search_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
	"github.com/stretchr/testify/require"
)

func TestDFS_DiscoveryFinishNesting(t *testing.T) {
	g := undirectedChain(4)
	ts, disc, err := search.DFS(context.Background(), g, 0, search.FullSearch(), true)
	require.NoError(t, err)
	require.Equal(t, search.Completed, disc)

	for desc := 0; desc < 4; desc++ {
		path, ok := ts.PathFromRoot(desc)
		require.True(t, ok)
		for _, anc := range path {
			if anc == desc {
				continue
			}
			la, ld := ts.Label(anc), ts.Label(desc)
			require.True(t, la.Discovery < ld.Discovery)
			require.True(t, ld.Finish < la.Finish)
		}
	}
}

func TestDFS_UndirectedExcludesParentEdge(t *testing.T) {
	g := undirectedChain(3)
	var processed [][2]int
	adapter := &search.Hooks{
		Process: func(n int, e graph.EdgeRef) bool {
			processed = append(processed, [2]int{n, g.Target(n, e)})
			return true
		},
	}
	_, _, err := search.DFS(context.Background(), g, 0, adapter, true)
	require.NoError(t, err)
	require.NotContains(t, processed, [2]int{1, 0})
}
