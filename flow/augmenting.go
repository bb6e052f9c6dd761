package flow

import (
	"context"
	"math"

	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
)

// residualFilter is the EdgeFilter every augmenting-path procedure uses:
// only arcs with strictly positive residual capacity are traversable.
func residualFilter(n *Network) search.Adapter {
	return &search.Hooks{
		Filter: func(u int, e int) bool { return n.ResidualCapacity(u, e) > 0 },
	}
}

// bottleneckAndEdges walks ts's predecessor chain from sink back to source,
// returning the minimum residual capacity along the path and the path's
// (node, edge) steps in source-to-sink order.
func bottleneckAndEdges[L any](n *Network, ts *search.TreeSearch[L], source, sink int, capOf func(u, e int) float64) (float64, []struct{ u, e int }, bool) {
	if !ts.InTree(sink) {
		return 0, nil, false
	}
	bottleneck := math.Inf(1)
	var steps []struct{ u, e int }
	cur := sink
	for cur != source {
		p, e := ts.Predecessor(cur)
		if p == cur {
			return 0, nil, false
		}
		if c := capOf(p, e); c < bottleneck {
			bottleneck = c
		}
		steps = append(steps, struct{ u, e int }{p, e})
		cur = p
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return bottleneck, steps, true
}

// ShortestAugmentingPath is Edmonds-Karp: repeatedly BFS for a shortest
// (fewest-hops) source-to-sink path in the residual network, push the
// bottleneck capacity along it, and repeat until sink is unreachable.
// Terminates in O(V*E) augmentations.
func ShortestAugmentingPath(ctx context.Context, n *Network, source, sink int) (total float64, err error) {
	if source == sink {
		return 0, nil
	}
	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		ts, _, berr := search.BFS(ctx, n, source, residualFilter(n), false)
		if berr != nil {
			return total, berr
		}
		bottleneck, steps, ok := bottleneckAndEdges(n, ts, source, sink, n.ResidualCapacity)
		if !ok {
			return total, nil
		}
		for _, s := range steps {
			n.AddFlow(s.u, s.e, bottleneck)
		}
		total += bottleneck
	}
}

// WidestAugmentingPath repeatedly finds the source-to-sink path whose
// bottleneck residual capacity is largest (via PrioritySearch with the
// MaxFlowAugment algebra), pushes that bottleneck, and repeats until sink is
// unreachable. Terminates in O(E^2 log U) where U bounds capacities.
func WidestAugmentingPath(ctx context.Context, n *Network, source, sink int) (total float64, err error) {
	if source == sink {
		return 0, nil
	}
	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		algebra := search.MaxFlowAugment{Cap: math.Inf(1)}
		ts, _, perr := search.PrioritySearch(ctx, n, source, residualFilter(n), algebra, func(less pqueue.Less) pqueue.Queue {
			return pqueue.NewIndexedHeap(less)
		})
		if perr != nil {
			return total, perr
		}
		if !ts.InTree(sink) {
			return total, nil
		}
		bottleneck := ts.Label(sink)
		if bottleneck <= 0 || math.IsInf(bottleneck, 1) {
			return total, nil
		}
		_, steps, ok := bottleneckAndEdges(n, ts, source, sink, n.ResidualCapacity)
		if !ok {
			return total, nil
		}
		for _, s := range steps {
			n.AddFlow(s.u, s.e, bottleneck)
		}
		total += bottleneck
	}
}
