package connectivity

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// Bipartite runs a 2-colouring BFS from s: the source gets colour 0, every
// newly discovered node the opposite colour of its predecessor. An edge
// whose two endpoints already share a colour witnesses an odd cycle and
// aborts the traversal. color[n] is -1 for nodes never reached.
func Bipartite(ctx context.Context, view graph.View, s graph.Node) (color []int, isBipartite bool, err error) {
	n := view.NumNodes()
	color = make([]int, n)
	for i := range color {
		color[i] = -1
	}
	color[s] = 0
	isBipartite = true

	adapter := &search.Hooks{
		Process: func(u int, e graph.EdgeRef) bool {
			v := view.Target(u, e)
			if color[v] == -1 {
				color[v] = 1 - color[u]
				return true
			}
			if color[v] == color[u] {
				isBipartite = false
				return false
			}
			return true
		},
	}
	_, _, err = search.BFS(ctx, view, s, adapter, true)
	return color, isBipartite, err
}
