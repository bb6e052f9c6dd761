package search

import "github.com/gographlib/algo/graph"

// NodeState is a node's position in a single traversal's lifecycle.
type NodeState int

const (
	Undiscovered NodeState = iota
	Discovered
	Closed
)

// noEdge is the sentinel EdgeRef used for a tree root's self predecessor,
// where no predecessor edge exists.
const noEdge graph.EdgeRef = -1

// TreeSearch is the per-node state/predecessor/label record produced by
// every traversal engine: for each node N, a state, a predecessor node
// P(N) and predecessor edge E(N) such that Target(P(N), E(N)) == N (except
// at the root, where P(N) == N), and a label L(N) whose meaning depends on
// the engine that produced it.
type TreeSearch[L any] struct {
	states    []NodeState
	preds     []int
	predEdges []graph.EdgeRef
	labels    []L
}

// NewTreeSearch allocates a TreeSearch over n nodes, every label initialised
// to the given zero value.
func NewTreeSearch[L any](n int, zero L) *TreeSearch[L] {
	ts := &TreeSearch[L]{
		states:    make([]NodeState, n),
		preds:     make([]int, n),
		predEdges: make([]graph.EdgeRef, n),
		labels:    make([]L, n),
	}
	for i := range ts.labels {
		ts.labels[i] = zero
	}
	return ts
}

func (ts *TreeSearch[L]) State(n int) NodeState { return ts.states[n] }

func (ts *TreeSearch[L]) SetState(n int, s NodeState) { ts.states[n] = s }

func (ts *TreeSearch[L]) Predecessor(n int) (int, graph.EdgeRef) {
	return ts.preds[n], ts.predEdges[n]
}

func (ts *TreeSearch[L]) SetPredecessor(n, p int, e graph.EdgeRef) {
	ts.preds[n] = p
	ts.predEdges[n] = e
}

func (ts *TreeSearch[L]) Label(n int) L { return ts.labels[n] }

func (ts *TreeSearch[L]) SetLabel(n int, l L) { ts.labels[n] = l }

// InTree reports whether n was reached at all (discovered or closed).
func (ts *TreeSearch[L]) InTree(n int) bool { return ts.states[n] != Undiscovered }

// PathFromRoot walks predecessors from n back to the tree root and returns
// the path from root to n. ok is false if n was never discovered.
func (ts *TreeSearch[L]) PathFromRoot(n int) (path []int, ok bool) {
	if !ts.InTree(n) {
		return nil, false
	}
	cur := n
	for {
		path = append(path, cur)
		p, _ := ts.Predecessor(cur)
		if p == cur {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// FindCycle walks predecessors from provoke, marking every node visited,
// until it revisits an already-marked node; the interval between the two
// visits to that node is the cycle, returned as the ordered sequence of
// nodes on it (first and last equal) together with the edge leading into
// each from its predecessor: edges[i] leads from nodes[i] to nodes[i+1].
// This terminates because a priority search that reported
// provoke as a negative-cycle witness is guaranteed a cycle reachable via
// predecessors.
func (ts *TreeSearch[L]) FindCycle(provoke int) (nodes []int, edges []graph.EdgeRef) {
	seen := make(map[int]int) // node -> position in the walk
	walk := []int{provoke}
	seen[provoke] = 0
	cur := provoke
	for {
		p, _ := ts.Predecessor(cur)
		if p == cur {
			// reached a root without a revisit; no cycle is actually present
			return nil, nil
		}
		if pos, ok := seen[p]; ok {
			// cycle is walk[pos:] closed back to p
			cycleNodes := append([]int(nil), walk[pos:]...)
			cycleNodes = append(cycleNodes, p)
			var cycleEdges []graph.EdgeRef
			for i := len(cycleNodes) - 1; i > 0; i-- {
				_, e := ts.Predecessor(cycleNodes[i-1])
				cycleEdges = append(cycleEdges, e)
			}
			// reverse the nodes into arc order; cycleEdges, gathered from
			// the far end, already has edge i leading into node i+1
			for i, j := 0, len(cycleNodes)-1; i < j; i, j = i+1, j-1 {
				cycleNodes[i], cycleNodes[j] = cycleNodes[j], cycleNodes[i]
			}
			return cycleNodes, cycleEdges
		}
		seen[p] = len(walk)
		walk = append(walk, p)
		cur = p
	}
}

// OptDist returns the label of n and true if n's state is Closed; otherwise
// the zero value and false.
func (ts *TreeSearch[L]) OptDist(n int) (l L, ok bool) {
	if ts.states[n] == Closed {
		return ts.labels[n], true
	}
	var zero L
	return zero, false
}
