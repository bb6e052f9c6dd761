package mst

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
)

// Result is Prim's or Kruskal's reported outcome: the sum of the weights of
// the edges included in the tree, and the number of in-tree nodes (which
// equals NumNodes() iff the graph is connected from the chosen root).
type Result struct {
	Weight float64
	Nodes  int
}

// PrimDense runs Prim's algorithm from root using the scan-for-min array
// queue, appropriate when most nodes are touched. The label of a node in the
// returned tree-search record is the weight of the cheapest edge that
// crosses into the tree from its predecessor, i.e. the MST algebra
// Combine(a, w) = w.
func PrimDense(ctx context.Context, view graph.WeightedView, root graph.Node) (*search.TreeSearch[float64], Result, error) {
	return prim(ctx, view, root, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewArrayQueue(less)
	})
}

// PrimSparse runs Prim's algorithm from root using the indexed binary heap,
// appropriate for sparse graphs.
func PrimSparse(ctx context.Context, view graph.WeightedView, root graph.Node) (*search.TreeSearch[float64], Result, error) {
	return prim(ctx, view, root, func(less pqueue.Less) pqueue.Queue {
		return pqueue.NewIndexedHeap(less)
	})
}

func prim(ctx context.Context, view graph.WeightedView, root graph.Node, newQueue search.QueueFactory) (*search.TreeSearch[float64], Result, error) {
	ts, _, err := search.PrioritySearch(ctx, view, root, search.FullSearch(), search.MSTEdge{}, newQueue)
	if err != nil {
		return ts, Result{}, err
	}
	var res Result
	for u := 0; u < view.NumNodes(); u++ {
		if ts.State(u) == search.Closed {
			res.Nodes++
			if u != root {
				res.Weight += ts.Label(u)
			}
		}
	}
	return ts, res, nil
}
