package mincostflow

import (
	"context"
	"math"

	"github.com/gographlib/algo/flow"
	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
)

// reducedCostView wraps a *flow.Network, presenting each arc's weight as its
// potential-adjusted reduced cost rather than its raw capacity, so the
// generic priority-search engine can run Dijkstra directly over it as long
// as potentials keep every reduced cost non-negative.
type reducedCostView struct {
	net *flow.Network
	pot []float64
}

func (v *reducedCostView) NumNodes() int          { return v.net.NumNodes() }
func (v *reducedCostView) EdgeBegin(n int) int     { return v.net.EdgeBegin(n) }
func (v *reducedCostView) EdgeInc(n int, e *int)   { v.net.EdgeInc(n, e) }
func (v *reducedCostView) EdgeEnd(n int, e int) bool { return v.net.EdgeEnd(n, e) }
func (v *reducedCostView) Target(n int, e int) int { return v.net.Target(n, e) }
func (v *reducedCostView) Weight(n int, e int) float64 {
	return v.net.ReducedCost(n, e, v.pot)
}

func residualFilter(net *flow.Network) search.Adapter {
	return &search.Hooks{
		Filter: func(u int, e int) bool { return net.ResidualCapacity(u, e) > 0 },
	}
}

// SuccessiveShortestPaths repeatedly finds a min-reduced-cost augmenting
// path from source to sink via Dijkstra over reduced costs (valid because
// potentials are updated by the Edmonds-Karp trick after every round, which
// keeps every reduced cost non-negative), then pushes min(bottleneck,
// remaining demand) along it, until demand is met or sink becomes
// unreachable. maxDemand may be math.Inf(1) to compute a plain min-cost
// maximum flow. The cost is monotonically non-decreasing across rounds.
func SuccessiveShortestPaths(ctx context.Context, net *flow.Network, source, sink int, maxDemand float64) (feasible bool, flowValue, cost float64, err error) {
	pot := make([]float64, net.NumNodes())
	remaining := maxDemand

	for remaining > 0 {
		select {
		case <-ctx.Done():
			return false, flowValue, cost, ctx.Err()
		default:
		}
		view := &reducedCostView{net: net, pot: pot}
		ts, _, perr := search.PrioritySearch(ctx, view, source, residualFilter(net), search.MinSum{}, func(less pqueue.Less) pqueue.Queue {
			return pqueue.NewIndexedHeap(less)
		})
		if perr != nil {
			return false, flowValue, cost, perr
		}
		if !ts.InTree(sink) {
			break
		}

		bottleneck := math.Inf(1)
		var steps []struct{ u, e int }
		cur := sink
		for cur != source {
			p, e := ts.Predecessor(cur)
			if p == cur {
				break
			}
			if c := net.ResidualCapacity(p, e); c < bottleneck {
				bottleneck = c
			}
			steps = append(steps, struct{ u, e int }{p, e})
			cur = p
		}
		if bottleneck > remaining {
			bottleneck = remaining
		}
		// The reduced-cost distance telescopes to the true path cost plus
		// pot[source] - pot[sink] (source's potential is always 0, since its
		// own shortest-path label is always 0 and OptDist only ever adds
		// that in): recover the true per-unit cost by adding back pot[sink]
		// as it stood before this round's update.
		trueCostPerUnit := ts.Label(sink) + pot[sink]
		for _, s := range steps {
			net.AddFlow(s.u, s.e, bottleneck)
		}
		flowValue += bottleneck
		cost += bottleneck * trueCostPerUnit
		remaining -= bottleneck

		for u := 0; u < net.NumNodes(); u++ {
			if l, ok := ts.OptDist(u); ok {
				pot[u] += l
			}
		}
	}
	feasible = math.IsInf(maxDemand, 1) || remaining <= 1e-9
	return feasible, flowValue, cost, nil
}
