package connectivity

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// Step is one (source, target, edge-handle) triple emitted by an Eulerian
// tour or cycle.
type Step struct {
	From, To graph.Node
	Edge     graph.EdgeRef
}

// Degrees computes, for every node, its out-degree and in-degree by scanning
// every edge exactly once. For a view built from an undirected container
// (where each undirected edge is materialised as a pair of opposite directed
// entries), OutDegree equals the familiar undirected degree and InDegree is
// identical to OutDegree.
func Degrees(view graph.View) (outDeg, inDeg []int) {
	n := view.NumNodes()
	outDeg = make([]int, n)
	inDeg = make([]int, n)
	for u := 0; u < n; u++ {
		for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
			outDeg[u]++
			inDeg[view.Target(u, e)]++
		}
	}
	return outDeg, inDeg
}

// weaklyConnected reports whether every node with nonzero degree is reachable
// from source when edges are traversed in either direction, using a BFS over
// the join of view and its transpose.
func weaklyConnected(ctx context.Context, view graph.WeightedView, source graph.Node, outDeg, inDeg []int) (bool, error) {
	joined := graph.NewJoinedView(view, graph.Reverse(view))
	ts, _, err := search.BFS(ctx, joined, source, search.FullSearch(), true)
	if err != nil {
		return false, err
	}
	for u := 0; u < view.NumNodes(); u++ {
		if (outDeg[u] > 0 || inDeg[u] > 0) && !ts.InTree(u) {
			return false, nil
		}
	}
	return true, nil
}

// DirectedCycleExists reports whether view admits an Eulerian circuit: every
// node's in-degree equals its out-degree, and the graph is weakly connected
// over nodes with nonzero degree.
func DirectedCycleExists(ctx context.Context, view graph.WeightedView, anyNode graph.Node) (bool, error) {
	out, in := Degrees(view)
	for u := range out {
		if out[u] != in[u] {
			return false, nil
		}
	}
	return weaklyConnected(ctx, view, anyNode, out, in)
}

// DirectedTourExists reports whether view admits an Eulerian trail: exactly
// one node has out-in == 1 (the required source) and one has in-out == 1
// (the sink), every other node balanced, and the graph weakly connected.
func DirectedTourExists(ctx context.Context, view graph.WeightedView) (source, sink graph.Node, ok bool, err error) {
	out, in := Degrees(view)
	source, sink = -1, -1
	for u := range out {
		d := out[u] - in[u]
		switch {
		case d == 1:
			if source != -1 {
				return -1, -1, false, nil
			}
			source = u
		case d == -1:
			if sink != -1 {
				return -1, -1, false, nil
			}
			sink = u
		case d != 0:
			return -1, -1, false, nil
		}
	}
	if source == -1 || sink == -1 {
		return -1, -1, false, nil
	}
	connected, cerr := weaklyConnected(ctx, view, source, out, in)
	if cerr != nil {
		return -1, -1, false, cerr
	}
	return source, sink, connected, nil
}

// UndirectedCycleExists reports whether view (built so every undirected edge
// appears as a symmetric pair) admits an Eulerian circuit: every node has
// even degree and the graph is connected.
func UndirectedCycleExists(ctx context.Context, view graph.WeightedView, anyNode graph.Node) (bool, error) {
	out, _ := Degrees(view)
	for _, d := range out {
		if d%2 != 0 {
			return false, nil
		}
	}
	ts, _, err := search.BFS(ctx, view, anyNode, search.FullSearch(), true)
	if err != nil {
		return false, err
	}
	for u, d := range out {
		if d > 0 && !ts.InTree(u) {
			return false, nil
		}
	}
	return true, nil
}

// UndirectedTourExists reports whether view admits an Eulerian trail: exactly
// zero or two odd-degree nodes (returning two candidate endpoints when there
// are two) and connectivity over nonzero-degree nodes.
func UndirectedTourExists(ctx context.Context, view graph.WeightedView) (a, b graph.Node, ok bool, err error) {
	out, _ := Degrees(view)
	a, b = -1, -1
	for u, d := range out {
		if d%2 != 0 {
			if a == -1 {
				a = u
			} else if b == -1 {
				b = u
			} else {
				return -1, -1, false, nil
			}
		}
	}
	start := a
	if start == -1 {
		for u, d := range out {
			if d > 0 {
				start = u
				break
			}
		}
		if start == -1 {
			return -1, -1, true, nil // no edges at all: trivially has a (empty) tour
		}
	}
	ts, _, berr := search.BFS(ctx, view, start, search.FullSearch(), true)
	if berr != nil {
		return -1, -1, false, berr
	}
	for u, d := range out {
		if d > 0 && !ts.InTree(u) {
			return -1, -1, false, nil
		}
	}
	return a, b, true, nil
}

// EulerianTour constructs an Eulerian tour or circuit starting at source via
// Hierholzer's algorithm: walk unused outgoing edges depth-first; when a
// node has no unused outgoing edge left, emit it (LIFO) into the tour;
// reverse at the end. For undirected views, using an edge from u to v also
// marks one matching unused edge from v back to u so each physical edge is
// consumed exactly once. The caller is responsible for having verified
// existence (via the Exists family above); this function does not re-check
// degree conditions, it only detects that the walk failed to consume every
// edge and reports ok=false in that case.
func EulerianTour(ctx context.Context, view graph.WeightedView, source graph.Node, directed bool) (tour []Step, ok bool, err error) {
	n := view.NumNodes()
	// used[u] is indexed in parallel with u's EdgeRef space (0..deg(u)-1 for
	// an AdjacencyList-backed view).
	used := make([][]bool, n)
	totalEdges := 0
	for u := 0; u < n; u++ {
		deg := 0
		for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
			deg++
		}
		used[u] = make([]bool, deg)
		totalEdges += deg
	}
	if !directed {
		totalEdges /= 2
	}

	cur := make([]graph.EdgeRef, n)
	for u := 0; u < n; u++ {
		cur[u] = view.EdgeBegin(u)
	}

	nextUnused := func(u graph.Node) (graph.EdgeRef, bool) {
		e := cur[u]
		for !view.EdgeEnd(u, e) {
			if !used[u][e] {
				cur[u] = e
				return e, true
			}
			view.EdgeInc(u, &e)
		}
		cur[u] = e
		return 0, false
	}

	markUsed := func(u graph.Node, e graph.EdgeRef) {
		used[u][e] = true
		if directed {
			return
		}
		v := view.Target(u, e)
		for f := view.EdgeBegin(v); !view.EdgeEnd(v, f); view.EdgeInc(v, &f) {
			if !used[v][f] && view.Target(v, f) == u {
				used[v][f] = true
				return
			}
		}
	}

	// frame.via is the edge handle (from the parent node) used to reach
	// frame.node; it is meaningless for the bottom (source) frame.
	type frame struct {
		node graph.Node
		via  graph.EdgeRef
	}
	stack := []frame{{node: source}}
	var steps []Step
	consumed := 0
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		default:
		}
		top := stack[len(stack)-1]
		e, has := nextUnused(top.node)
		if !has {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1].node
				steps = append(steps, Step{From: parent, To: top.node, Edge: top.via})
			}
			continue
		}
		v := view.Target(top.node, e)
		markUsed(top.node, e)
		consumed++
		stack = append(stack, frame{node: v, via: e})
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, consumed == totalEdges, nil
}
