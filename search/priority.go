package search

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/pqueue"
)

// QueueFactory builds a fresh Queue ordered by less; callers pass
// pqueue.NewArrayQueue for dense graphs or pqueue.NewIndexedHeap for sparse
// ones.
type QueueFactory func(less pqueue.Less) pqueue.Queue

// PrioritySearch is the generic Dijkstra-shaped engine: discover s with
// label algebra.Init(), then repeatedly pop the queue's extremum, close it,
// and relax its outgoing edges under algebra.Combine/Priority. Closed nodes
// are never relaxed again, which requires algebra to be monotonic.
func PrioritySearch(ctx context.Context, view graph.WeightedView, s graph.Node, adapter Adapter, algebra Algebra, newQueue QueueFactory) (*TreeSearch[float64], Discriminator, error) {
	ts := NewTreeSearch[float64](view.NumNodes(), 0)
	less := func(a, b int) bool { return algebra.Priority(ts.Label(a), ts.Label(b)) }
	q := newQueue(less)

	ts.SetState(s, Discovered)
	ts.SetPredecessor(s, s, noEdge)
	ts.SetLabel(s, algebra.Init())
	q.Push(s)

	for !q.Empty() {
		select {
		case <-ctx.Done():
			return ts, Completed, ctx.Err()
		default:
		}

		n := q.Pop()
		ts.SetState(n, Closed)
		if !adapter.NodePreprocess(n) {
			return ts, AbortedNodePreprocess, nil
		}
		for e := view.EdgeBegin(n); !view.EdgeEnd(n, e); view.EdgeInc(n, &e) {
			if !adapter.EdgeFilter(n, e) {
				continue
			}
			if !adapter.EdgeProcess(n, e) {
				return ts, AbortedEdgeProcess, nil
			}
			t := view.Target(n, e)
			if ts.State(t) == Closed {
				continue
			}
			cand := algebra.Combine(ts.Label(n), view.Weight(n, e))
			switch ts.State(t) {
			case Undiscovered:
				ts.SetState(t, Discovered)
				ts.SetLabel(t, cand)
				ts.SetPredecessor(t, n, e)
				q.Push(t)
			case Discovered:
				if algebra.Priority(cand, ts.Label(t)) {
					ts.SetLabel(t, cand)
					ts.SetPredecessor(t, n, e)
					q.Rebuild(t)
				}
			}
		}
		if !adapter.NodePostprocess(n) {
			return ts, AbortedNodePostprocess, nil
		}
	}
	return ts, Completed, nil
}

// DAGRelax replaces PrioritySearch's queue with a caller-supplied
// topological order (every node after all of its DAG predecessors, as
// connectivity.TopologicalSort returns it) and drops the closed-set check,
// which is the
// only valid way to propagate negative edge weights through this engine:
// every node is relaxed exactly once, in an order that guarantees all of its
// predecessors in the DAG have already been finalised.
func DAGRelax(ctx context.Context, view graph.WeightedView, order []graph.Node, s graph.Node, adapter Adapter, algebra Algebra) (*TreeSearch[float64], Discriminator, error) {
	ts := NewTreeSearch[float64](view.NumNodes(), 0)
	ts.SetState(s, Discovered)
	ts.SetPredecessor(s, s, noEdge)
	ts.SetLabel(s, algebra.Init())

	for _, n := range order {
		select {
		case <-ctx.Done():
			return ts, Completed, ctx.Err()
		default:
		}
		if ts.State(n) == Undiscovered {
			continue
		}
		ts.SetState(n, Closed)
		if !adapter.NodePreprocess(n) {
			return ts, AbortedNodePreprocess, nil
		}
		for e := view.EdgeBegin(n); !view.EdgeEnd(n, e); view.EdgeInc(n, &e) {
			if !adapter.EdgeFilter(n, e) {
				continue
			}
			if !adapter.EdgeProcess(n, e) {
				return ts, AbortedEdgeProcess, nil
			}
			t := view.Target(n, e)
			cand := algebra.Combine(ts.Label(n), view.Weight(n, e))
			if ts.State(t) == Undiscovered {
				ts.SetState(t, Discovered)
				ts.SetLabel(t, cand)
				ts.SetPredecessor(t, n, e)
			} else if algebra.Priority(cand, ts.Label(t)) {
				ts.SetLabel(t, cand)
				ts.SetPredecessor(t, n, e)
			}
		}
		if !adapter.NodePostprocess(n) {
			return ts, AbortedNodePostprocess, nil
		}
	}
	return ts, Completed, nil
}
