package shortestpath

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// DAGShortestPath relaxes every node exactly once in the caller-supplied
// topological order (every node after all of its DAG predecessors, as
// connectivity.TopologicalSort returns it), which is the only valid way to push negative
// edge weights through the priority-search engine since no closed-set check
// is needed: by the time a node is processed, every edge into it from an
// earlier node in order has already relaxed it.
func DAGShortestPath(ctx context.Context, view graph.WeightedView, order []graph.Node, s graph.Node) (*search.TreeSearch[float64], error) {
	ts, _, err := search.DAGRelax(ctx, view, order, s, search.FullSearch(), search.MinSum{})
	return ts, err
}
