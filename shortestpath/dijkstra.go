package shortestpath

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
)

// DijkstraDense runs Dijkstra's algorithm using the scan-for-min array
// queue, appropriate when most nodes are touched and the O(V) per-pop scan
// does not dominate.
func DijkstraDense(ctx context.Context, view graph.WeightedView, s graph.Node) (*search.TreeSearch[float64], error) {
	ts, _, err := search.PrioritySearch(ctx, view, s, search.FullSearch(), search.MinSum{}, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewArrayQueue(less)
	})
	return ts, err
}

// DijkstraSparse runs Dijkstra's algorithm using the indexed binary heap,
// appropriate for sparse graphs where most nodes are never touched.
func DijkstraSparse(ctx context.Context, view graph.WeightedView, s graph.Node) (*search.TreeSearch[float64], error) {
	ts, _, err := search.PrioritySearch(ctx, view, s, search.FullSearch(), search.MinSum{}, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewIndexedHeap(less)
	})
	return ts, err
}
