package mincostflow

import (
	"context"
	"math"

	"github.com/gographlib/algo/flow"
	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/shortestpath"
)

// residualCostView presents a *flow.Network as a WeightedView whose edges
// are the arcs with positive residual capacity and whose weights are the
// raw per-unit arc costs (cost forward, -cost backward). EdgeBegin/EdgeInc
// skip saturated arcs the way graph.FilteredView does, so Bellman-Ford only
// ever relaxes arcs that can actually carry more flow.
type residualCostView struct {
	net     *flow.Network
	zeroPot []float64
}

func newResidualCostView(net *flow.Network) *residualCostView {
	return &residualCostView{net: net, zeroPot: make([]float64, net.NumNodes())}
}

func (v *residualCostView) NumNodes() int { return v.net.NumNodes() }

func (v *residualCostView) EdgeBegin(n graph.Node) graph.EdgeRef {
	e := v.net.EdgeBegin(n)
	for !v.net.EdgeEnd(n, e) && v.net.ResidualCapacity(n, e) <= 0 {
		v.net.EdgeInc(n, &e)
	}
	return e
}

func (v *residualCostView) EdgeInc(n graph.Node, e *graph.EdgeRef) {
	v.net.EdgeInc(n, e)
	for !v.net.EdgeEnd(n, *e) && v.net.ResidualCapacity(n, *e) <= 0 {
		v.net.EdgeInc(n, e)
	}
}

func (v *residualCostView) EdgeEnd(n graph.Node, e graph.EdgeRef) bool { return v.net.EdgeEnd(n, e) }

func (v *residualCostView) Target(n graph.Node, e graph.EdgeRef) graph.Node {
	return v.net.Target(n, e)
}

// Weight is the raw cost of traversing the arc: ReducedCost under an
// all-zero potential vector is exactly +cost forward and -cost backward.
func (v *residualCostView) Weight(n graph.Node, e graph.EdgeRef) float64 {
	return v.net.ReducedCost(n, e, v.zeroPot)
}

// CycleCanceling computes a min-cost flow of demand units from source to
// sink over numNodes nodes and the given pipes by cycle canceling:
// the demand is first saturated greedily through a
// fictitious source->sink pipe whose per-unit cost exceeds the sum of all
// real pipe costs, then negative-cost cycles in the residual graph are
// found via Bellman-Ford (trying every start node, since a cycle need not
// be reachable from the source) and each is saturated to its bottleneck
// until no negative cycle remains. Canceling a cycle through the fictitious
// pipe's backward arc is what reroutes demand onto the real network; any
// flow still on the fictitious pipe at the end measures unmet demand.
//
// demand must be finite; use SuccessiveShortestPaths with maxDemand =
// math.Inf(1) for a plain min-cost maximum flow. The total cost is
// monotonically non-increasing per canceled cycle.
func CycleCanceling(ctx context.Context, numNodes int, pipes []flow.Pipe, source, sink int, demand float64) (feasible bool, flowValue, cost float64, err error) {
	if source == sink || demand <= 0 {
		return true, 0, 0, nil
	}

	costSum := 0.0
	for _, p := range pipes {
		if cp, ok := p.(flow.CostedPipe); ok {
			costSum += math.Abs(cp.Cost())
		}
	}
	fict := flow.NewCostedDirectPipe(source, sink, demand, costSum+1)
	all := make([]flow.Pipe, 0, len(pipes)+1)
	all = append(all, pipes...)
	all = append(all, fict)
	net := flow.NewNetwork(numNodes, all)
	fict.AddFlow(demand)

	view := newResidualCostView(net)
	for {
		select {
		case <-ctx.Done():
			return false, 0, 0, ctx.Err()
		default:
		}
		canceled := false
		for start := 0; start < numNodes && !canceled; start++ {
			ts, witness, hasCycle, berr := shortestpath.BellmanFord(ctx, view, start)
			if berr != nil {
				return false, 0, 0, berr
			}
			if !hasCycle {
				continue
			}
			nodes, _ := ts.FindCycle(witness)
			if len(nodes) < 2 {
				continue
			}
			// nodes begins and ends with the same node; each cycle node's
			// predecessor arc in ts is one arc of the cycle.
			bottleneck := math.Inf(1)
			for _, x := range nodes[1:] {
				p, e := ts.Predecessor(x)
				if c := net.ResidualCapacity(p, e); c < bottleneck {
					bottleneck = c
				}
			}
			for _, x := range nodes[1:] {
				p, e := ts.Predecessor(x)
				net.AddFlow(p, e, bottleneck)
			}
			canceled = true
		}
		if !canceled {
			break
		}
	}

	unmet := fict.Flow()
	for _, p := range pipes {
		cp, ok := p.(flow.CostedPipe)
		if !ok {
			continue
		}
		if f := cp.Flow(); f > 0 {
			cost += f * cp.Cost()
		}
	}
	flowValue = demand - unmet
	feasible = unmet <= 1e-9
	return feasible, flowValue, cost, nil
}
