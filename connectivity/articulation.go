package connectivity

import (
	"context"
	"sort"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// ArticulationResult holds the articulation points and bridges discovered by
// a single DFS run, plus the low-link ("ancestor") value computed for every
// node: the earliest discovery time reachable from that node's subtree via
// at most one back edge.
type ArticulationResult struct {
	ArticulationPoints map[graph.Node]bool
	Bridges            [][2]graph.Node // (u, v) with u the parent side of the bridge edge
	Ancestor           []int           // per-node low-link value, indexed by node id
}

// ArticulationPoints runs a single DFS from s over an undirected view,
// maintaining a per-node ancestor pointer (initialised to the node's own
// discovery time) that is pulled back by every non-tree edge to an
// already-discovered node during the DFS, and by every tree child in a pass
// over the DFS tree afterwards. In that pass, children before parents, for
// each non-root node n with parent p:
//   - n's ancestor equals p's discovery time ⇒ p is an articulation point
//     (unless p is the root);
//   - n's ancestor equals n's own discovery time ⇒ (p, n) is a bridge, and p
//     is an articulation point unless p is the root;
//   - n's ancestor is propagated up into p if it is earlier.
//
// The root is special-cased separately: it is an articulation point iff it
// has two or more DFS children.
func ArticulationPoints(ctx context.Context, view graph.View, s graph.Node) (*ArticulationResult, error) {
	n := view.NumNodes()
	res := &ArticulationResult{
		ArticulationPoints: make(map[graph.Node]bool),
		Ancestor:           make([]int, n),
	}
	discovery := make([]int, n)
	for i := range discovery {
		discovery[i] = -1
	}
	clock := 0
	rootChildren := 0

	adapter := &search.Hooks{
		NodePre: func(u int) bool {
			clock++
			discovery[u] = clock
			res.Ancestor[u] = clock
			return true
		},
		Process: func(u int, e graph.EdgeRef) bool {
			v := view.Target(u, e)
			if discovery[v] >= 0 && discovery[v] < res.Ancestor[u] {
				res.Ancestor[u] = discovery[v]
			}
			return true
		},
		NodePost: func(u int) bool {
			return true
		},
	}

	ts, _, err := search.DFS(ctx, view, s, adapter, true)
	if err != nil {
		return res, err
	}

	// Post-order walk over the DFS tree propagates ancestor values and
	// classifies articulation points/bridges; this mirrors the effect of
	// NodePostprocess but is computed here because propagation needs every
	// child's Ancestor finalised, which DFS's own postprocess ordering
	// already guarantees — recomputed as an explicit pass over the
	// predecessor tree sorted by descending discovery time (a reverse
	// preorder) so children are visited before their parent.
	order := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if discovery[u] >= 0 {
			order = append(order, u)
		}
	}
	sort.Slice(order, func(i, j int) bool { return discovery[order[i]] > discovery[order[j]] })

	for _, u := range order {
		if u == s {
			continue
		}
		p, _ := ts.Predecessor(u)
		if p == s {
			rootChildren++
		}
		if res.Ancestor[u] == discovery[p] && p != s {
			res.ArticulationPoints[p] = true
		}
		if res.Ancestor[u] == discovery[u] {
			res.Bridges = append(res.Bridges, [2]graph.Node{p, u})
			if p != s {
				res.ArticulationPoints[p] = true
			}
		}
		if res.Ancestor[u] < res.Ancestor[p] {
			res.Ancestor[p] = res.Ancestor[u]
		}
	}
	if rootChildren >= 2 {
		res.ArticulationPoints[s] = true
	}
	return res, nil
}
