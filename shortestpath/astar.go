package shortestpath

import (
	"context"
	"math"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/pqueue"
	"github.com/gographlib/algo/search"
)

// Heuristic estimates the remaining distance from n to a fixed goal. For
// optimality the heuristic must be admissible (never overestimates) and
// consistent (satisfies the triangle inequality); AStar requires but does
// not enforce this.
type Heuristic func(n graph.Node) float64

// AStar runs Dijkstra with the queue ordered by label(n) + heuristic(n)
// rather than label(n) alone; the label itself still accumulates plain edge
// weights, so the returned tree's labels are true distances, not f-scores.
// The search stops the instant goal is popped from the queue; reached is
// false if goal was never reached.
func AStar(ctx context.Context, view graph.WeightedView, s, goal graph.Node, h Heuristic) (ts *search.TreeSearch[float64], reached bool, err error) {
	ts = search.NewTreeSearch[float64](view.NumNodes(), math.Inf(1))
	less := func(a, b int) bool {
		return ts.Label(a)+h(a) < ts.Label(b)+h(b)
	}
	q := pqueue.NewIndexedHeap(less)

	ts.SetState(s, search.Discovered)
	ts.SetPredecessor(s, s, -1)
	ts.SetLabel(s, 0)
	q.Push(s)

	for !q.Empty() {
		select {
		case <-ctx.Done():
			return ts, false, ctx.Err()
		default:
		}
		n := q.Pop()
		ts.SetState(n, search.Closed)
		if n == goal {
			return ts, true, nil
		}
		for e := view.EdgeBegin(n); !view.EdgeEnd(n, e); view.EdgeInc(n, &e) {
			t := view.Target(n, e)
			if ts.State(t) == search.Closed {
				continue
			}
			cand := ts.Label(n) + view.Weight(n, e)
			switch ts.State(t) {
			case search.Undiscovered:
				ts.SetState(t, search.Discovered)
				ts.SetLabel(t, cand)
				ts.SetPredecessor(t, n, e)
				q.Push(t)
			case search.Discovered:
				if cand < ts.Label(t) {
					ts.SetLabel(t, cand)
					ts.SetPredecessor(t, n, e)
					q.Rebuild(t)
				}
			}
		}
	}
	return ts, false, nil
}
