package search

import (
	"context"

	"github.com/gographlib/algo/graph"
)

// DFSLabel is the DFS engine's per-node label: the (discovery, finish) time
// pair assigned by the traversal clock.
type DFSLabel struct {
	Discovery, Finish int
}

type dfsFrame struct {
	node graph.Node
	edge graph.EdgeRef
	// parentSkipped records that the one edge leading back to this node's
	// tree parent has already been suppressed, so a parallel edge to the
	// same parent is still reported.
	parentSkipped bool
}

// DFS runs a depth-first traversal from s over view using an explicit stack
// of (node, current edge). Discovery time is assigned on push, finish time
// on pop. For undirected graphs the immediate parent edge is excluded from
// EdgeProcess to avoid a false back-edge report.
func DFS(ctx context.Context, view graph.View, s graph.Node, adapter Adapter, undirected bool) (*TreeSearch[DFSLabel], Discriminator, error) {
	ts := NewTreeSearch[DFSLabel](view.NumNodes(), DFSLabel{})
	clock := 0

	ts.SetState(s, Discovered)
	ts.SetPredecessor(s, s, noEdge)
	clock++
	ts.SetLabel(s, DFSLabel{Discovery: clock})
	if !adapter.NodePreprocess(s) {
		return ts, AbortedNodePreprocess, nil
	}
	stack := []dfsFrame{{node: s, edge: view.EdgeBegin(s)}}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ts, Completed, ctx.Err()
		default:
		}

		i := len(stack) - 1
		n, e := stack[i].node, stack[i].edge

		if view.EdgeEnd(n, e) {
			clock++
			l := ts.Label(n)
			l.Finish = clock
			ts.SetLabel(n, l)
			if !adapter.NodePostprocess(n) {
				return ts, AbortedNodePostprocess, nil
			}
			stack = stack[:i]
			continue
		}

		// Recognise the parent edge by its target: the stored predecessor
		// edge ref belongs to the parent's adjacency and is not comparable
		// against this node's own refs.
		predNode, _ := ts.Predecessor(n)
		if undirected && n != s && !stack[i].parentSkipped && view.Target(n, e) == predNode {
			stack[i].parentSkipped = true
			view.EdgeInc(n, &stack[i].edge)
			continue
		}
		if !adapter.EdgeFilter(n, e) {
			view.EdgeInc(n, &stack[i].edge)
			continue
		}
		if !adapter.EdgeProcess(n, e) {
			return ts, AbortedEdgeProcess, nil
		}
		t := view.Target(n, e)
		view.EdgeInc(n, &stack[i].edge)

		if ts.State(t) == Undiscovered {
			ts.SetState(t, Discovered)
			ts.SetPredecessor(t, n, e)
			clock++
			ts.SetLabel(t, DFSLabel{Discovery: clock})
			if !adapter.NodePreprocess(t) {
				return ts, AbortedNodePreprocess, nil
			}
			stack = append(stack, dfsFrame{node: t, edge: view.EdgeBegin(t)})
		}
	}
	return ts, Completed, nil
}
