package shortestpath

import (
	"context"
	"math"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// FloydWarshall maintains one tree-search record per source, initialised
// from direct out-edges, and iterates a median node m from order: every
// (source, target) pair with source->m in source's tree and m->target in
// m's tree is offered the concatenated distance. A negative cycle is
// detected when some source s's own predecessor entry changes away from the
// identity root during a relaxation through m; that source is returned as
// negCycleSource with hasCycle true. The final distances are insensitive to
// order, which must enumerate every node exactly once; nil means 0..n-1.
func FloydWarshall(ctx context.Context, view graph.WeightedView, order []graph.Node) (trees []*search.TreeSearch[float64], negCycleSource graph.Node, hasCycle bool, err error) {
	n := view.NumNodes()
	if order == nil {
		order = make([]graph.Node, n)
		for i := range order {
			order[i] = i
		}
	}
	trees = make([]*search.TreeSearch[float64], n)
	for s := 0; s < n; s++ {
		ts := search.NewTreeSearch[float64](n, math.Inf(1))
		ts.SetState(s, search.Closed)
		ts.SetPredecessor(s, s, -1)
		ts.SetLabel(s, 0)
		for e := view.EdgeBegin(s); !view.EdgeEnd(s, e); view.EdgeInc(s, &e) {
			t := view.Target(s, e)
			w := view.Weight(s, e)
			if ts.State(t) != search.Closed || w < ts.Label(t) {
				ts.SetState(t, search.Closed)
				ts.SetLabel(t, w)
				ts.SetPredecessor(t, s, e)
			}
		}
		trees[s] = ts
	}

	for _, m := range order {
		select {
		case <-ctx.Done():
			return trees, -1, false, ctx.Err()
		default:
		}
		for s := 0; s < n; s++ {
			if trees[s].State(m) != search.Closed {
				continue
			}
			distSM := trees[s].Label(m)
			for t := 0; t < n; t++ {
				if t == m || trees[m].State(t) != search.Closed {
					continue
				}
				cand := distSM + trees[m].Label(t)
				if trees[s].State(t) != search.Closed || cand < trees[s].Label(t) {
					p, e := trees[m].Predecessor(t)
					trees[s].SetState(t, search.Closed)
					trees[s].SetLabel(t, cand)
					trees[s].SetPredecessor(t, p, e)
					if t == s {
						return trees, s, true, nil
					}
				}
			}
		}
	}
	return trees, -1, false, nil
}
