package shortestpath

import (
	"context"
	"math"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// BellmanFord runs a level-alternating Bellman-Ford relaxation from s: at
// outer iteration k, only nodes whose label changed at iteration k-1 are
// relaxed. If a node is relaxed again at the n-th iteration (n = node count),
// that node is returned as the provoking witness and hasCycle is true; the
// caller recovers the cycle via (*search.TreeSearch[float64]).FindCycle on
// the witness. Otherwise the returned tree is a valid shortest-path tree
// with every reachable node Closed.
func BellmanFord(ctx context.Context, view graph.WeightedView, s graph.Node) (ts *search.TreeSearch[float64], provoking graph.Node, hasCycle bool, err error) {
	n := view.NumNodes()
	ts = search.NewTreeSearch[float64](n, math.Inf(1))
	ts.SetState(s, search.Discovered)
	ts.SetPredecessor(s, s, -1)
	ts.SetLabel(s, 0)

	changed := []graph.Node{s}
	for iter := 0; iter < n; iter++ {
		if len(changed) == 0 {
			break
		}
		seen := make(map[graph.Node]bool)
		var next []graph.Node
		for _, u := range changed {
			select {
			case <-ctx.Done():
				return ts, -1, false, ctx.Err()
			default:
			}
			for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
				v := view.Target(u, e)
				cand := ts.Label(u) + view.Weight(u, e)
				if ts.State(v) == search.Undiscovered || cand < ts.Label(v) {
					ts.SetState(v, search.Discovered)
					ts.SetLabel(v, cand)
					ts.SetPredecessor(v, u, e)
					if !seen[v] {
						seen[v] = true
						next = append(next, v)
					}
					if iter == n-1 {
						return ts, v, true, nil
					}
				}
			}
		}
		changed = next
	}
	for i := 0; i < n; i++ {
		if ts.State(i) == search.Discovered {
			ts.SetState(i, search.Closed)
		}
	}
	return ts, -1, false, nil
}
