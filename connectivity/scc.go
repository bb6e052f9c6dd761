package connectivity

import (
	"context"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// TarjanSCC computes the strongly connected components of a directed view
// using the same ancestor-propagation scheme as ArticulationPoints, plus a
// stack of currently-open nodes. When a node's ancestor comes back equal to
// its own discovery time, it is the root of one SCC: the stack is popped
// down through that node, and every popped node is labelled with that root's
// id. label[u] == label[v] iff u and v are in the same component; every node
// unreachable from any of the given roots keeps label -1.
func TarjanSCC(ctx context.Context, view graph.View, roots []graph.Node) (label []int, numComponents int, err error) {
	n := view.NumNodes()
	label = make([]int, n)
	for i := range label {
		label[i] = -1
	}
	discovery := make([]int, n)
	for i := range discovery {
		discovery[i] = -1
	}
	ancestor := make([]int, n)
	onStack := make([]bool, n)
	var stack []graph.Node
	clock := 0

	parent := make([]graph.Node, n)

	for _, s := range roots {
		if discovery[s] >= 0 {
			continue
		}
		parent[s] = s
		adapter := &search.Hooks{
			NodePre: func(u int) bool {
				clock++
				discovery[u] = clock
				ancestor[u] = clock
				stack = append(stack, u)
				onStack[u] = true
				return true
			},
			// Nodes already assigned to a component under an earlier root are
			// not re-entered.
			Filter: func(u int, e graph.EdgeRef) bool {
				v := view.Target(u, e)
				return discovery[v] < 0 || onStack[v]
			},
			Process: func(u int, e graph.EdgeRef) bool {
				v := view.Target(u, e)
				if discovery[v] < 0 {
					// v is about to become u's tree child.
					parent[v] = u
				} else if onStack[v] && discovery[v] < ancestor[u] {
					ancestor[u] = discovery[v]
				}
				return true
			},
			// Pops must interleave with the traversal: when an SCC root
			// finishes, exactly its component sits above it on the stack.
			NodePost: func(u int) bool {
				if ancestor[u] == discovery[u] {
					for {
						top := stack[len(stack)-1]
						stack = stack[:len(stack)-1]
						onStack[top] = false
						label[top] = u
						if top == u {
							break
						}
					}
					numComponents++
				}
				if p := parent[u]; p != u && ancestor[u] < ancestor[p] {
					ancestor[p] = ancestor[u]
				}
				return true
			},
		}
		if _, _, derr := search.DFS(ctx, view, s, adapter, false); derr != nil {
			return label, 0, derr
		}
	}
	return label, numComponents, nil
}

// KosarajuSCC computes strongly connected components in two passes: a DFS
// over view to obtain a reverse finish-time order, then a DFS over the
// transposed view in that order, each restart defining one SCC whose label
// is the restart node.
func KosarajuSCC(ctx context.Context, view graph.WeightedView, roots []graph.Node) (label []int, numComponents int, err error) {
	n := view.NumNodes()
	var finishOrder []graph.Node
	visited := make([]bool, n)
	adapter := &search.Hooks{
		NodePost: func(u int) bool {
			finishOrder = append(finishOrder, u)
			return true
		},
	}
	for _, s := range roots {
		if visited[s] {
			continue
		}
		ts, _, derr := search.DFS(ctx, view, s, adapter, false)
		if derr != nil {
			return nil, 0, derr
		}
		for u := 0; u < n; u++ {
			if ts.State(u) != search.Undiscovered {
				visited[u] = true
			}
		}
	}

	rev := graph.Reverse(view)
	label = make([]int, n)
	for i := range label {
		label[i] = -1
	}
	for i := len(finishOrder) - 1; i >= 0; i-- {
		s := finishOrder[i]
		if label[s] != -1 {
			continue
		}
		collect := &search.Hooks{
			Filter: func(u int, e graph.EdgeRef) bool { return label[rev.Target(u, e)] == -1 },
			NodePre: func(u int) bool {
				label[u] = s
				return true
			},
		}
		if _, _, derr := search.DFS(ctx, rev, s, collect, false); derr != nil {
			return label, 0, derr
		}
		numComponents++
	}
	return label, numComponents, nil
}
