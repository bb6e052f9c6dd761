package connectivity

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// TopologicalSort produces a DFS-postorder topological ordering of a DAG.
// With partial=true, only nodes reachable from s are ordered; with
// partial=false, every node 0..NumNodes()-1 is visited, skipping any already
// ordered by an earlier root, producing a total order over the whole graph.
// err is non-nil only when ctx is cancelled. The order is not checked for
// cycles (callers that need cycle detection should use IsDAG, which reuses
// this ordering machinery).
func TopologicalSort(ctx context.Context, view graph.View, s graph.Node, partial bool) (order []graph.Node, err error) {
	n := view.NumNodes()
	visited := make([]bool, n)
	adapter := &search.Hooks{
		// Edges into nodes an earlier restart already output-sorted are
		// filtered, so no node is emitted twice across restarts.
		Filter: func(u int, e graph.EdgeRef) bool {
			return !visited[view.Target(u, e)]
		},
		NodePost: func(u int) bool {
			visited[u] = true
			order = append(order, u)
			return true
		},
	}

	if partial {
		if _, _, derr := search.DFS(ctx, view, s, adapter, false); derr != nil {
			return nil, derr
		}
	} else {
		for start := 0; start < n; start++ {
			if visited[start] {
				continue
			}
			if _, _, derr := search.DFS(ctx, view, start, adapter, false); derr != nil {
				return nil, derr
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// IsDAG reports whether view (interpreted as directed) has no cycle, by
// running TopologicalSort over every node and checking that every edge
// respects the resulting order — equivalent to discarding the sort's output
// except for the order-position check.
func IsDAG(ctx context.Context, view graph.View) (bool, error) {
	n := view.NumNodes()
	order, err := TopologicalSort(ctx, view, 0, false)
	if err != nil {
		return false, err
	}
	pos := make([]int, n)
	for i, u := range order {
		pos[u] = i
	}
	for u := 0; u < n; u++ {
		for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
			v := view.Target(u, e)
			if pos[v] < pos[u] {
				return false, nil
			}
		}
	}
	return true, nil
}
