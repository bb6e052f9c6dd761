package search

import (
	"context"

	"github.com/gographlib/algo/graph"
)

// BFS runs a breadth-first traversal from s over view, calling adapter's
// hooks as each node and edge is visited. The label of a discovered node is
// its step count from s. When undirected is true, the single edge used to
// reach a node from its immediate predecessor is excluded from that node's
// own EdgeProcess pass, so an adapter does not observe a trivial back-edge
// to its own parent; closed-target edges are still offered to EdgeProcess
// otherwise, so an adapter can see both tree and non-tree edges.
func BFS(ctx context.Context, view graph.View, s graph.Node, adapter Adapter, undirected bool) (*TreeSearch[int], Discriminator, error) {
	ts := NewTreeSearch[int](view.NumNodes(), 0)
	ts.SetState(s, Discovered)
	ts.SetPredecessor(s, s, noEdge)
	ts.SetLabel(s, 0)

	current := []graph.Node{s}
	depth := 0
	for len(current) > 0 {
		var next []graph.Node
		for _, n := range current {
			select {
			case <-ctx.Done():
				return ts, Completed, ctx.Err()
			default:
			}

			ts.SetState(n, Closed)
			if !adapter.NodePreprocess(n) {
				return ts, AbortedNodePreprocess, nil
			}
			// The predecessor edge was obtained from the parent's adjacency,
			// so it cannot be compared against this node's own edge refs;
			// the parent edge is recognised by its target instead, and only
			// one occurrence is suppressed so a genuine parallel edge back
			// to the parent is still observed.
			predNode, _ := ts.Predecessor(n)
			parentSkipped := false
			for e := view.EdgeBegin(n); !view.EdgeEnd(n, e); view.EdgeInc(n, &e) {
				if undirected && n != s && !parentSkipped && view.Target(n, e) == predNode {
					parentSkipped = true
					continue
				}
				if !adapter.EdgeFilter(n, e) {
					continue
				}
				if !adapter.EdgeProcess(n, e) {
					return ts, AbortedEdgeProcess, nil
				}
				t := view.Target(n, e)
				if ts.State(t) == Undiscovered {
					ts.SetState(t, Discovered)
					ts.SetPredecessor(t, n, e)
					ts.SetLabel(t, depth+1)
					next = append(next, t)
				}
			}
			if !adapter.NodePostprocess(n) {
				return ts, AbortedNodePostprocess, nil
			}
		}
		current = next
		depth++
	}
	return ts, Completed, nil
}
