package matching

import (
	"context"

	"github.com/gographlib/algo/graph"
)

// GeneralCardinality computes a maximum-cardinality matching on an
// undirected graph of n nodes (view must expose each undirected edge from
// both endpoints, as mst.Kruskal's input view does) using Edmonds' blossom
// algorithm. Odd cycles discovered while
// growing an alternating tree are contracted into a single pseudo-node (a
// blossom) so the BFS can keep treating the tree as bipartite-shaped; every
// node inside a contracted blossom shares the blossom's base for the
// duration of the search rooted at the current unmatched vertex.
//
// Internally this is the classical O(V^3) formulation: base[v] identifies
// the top-level blossom (or v itself) currently containing v, p[v] is the
// alternating-tree parent used both for ordinary tree edges and for the
// "petal" walk markPath lays down when a blossom is found, and match[v] is
// the current matching partner (-1 if unmatched). The public Result uses
// the module-wide match[i]==i convention for "unmatched"; the conversion
// happens once, at the end, rather than threading two sentinels through the
// search.
func GeneralCardinality(ctx context.Context, view graph.View, n int) (Result, error) {
	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	for root := 0; root < n; root++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		if match[root] != -1 {
			continue
		}
		augmentOnce(view, n, match, root)
	}

	res := Result{Match: make([]int, n)}
	for i := 0; i < n; i++ {
		if match[i] == -1 {
			res.Match[i] = i
		} else {
			res.Match[i] = match[i]
			res.Size++
		}
	}
	res.Size /= 2
	return res, nil
}

// blossomState holds the per-root working arrays for one augmentOnce call.
// Every node is, at any point in the search, in one of a few
// categories: a terminal outside any blossom
// (base[v]==v), a terminal inside a blossom (base[v]!=v), or — implicitly,
// since this module represents a blossom only as the shared base value of
// its members rather than a separate allocated node — the "blossom itself"
// is simply whichever original vertex currently serves as base for the
// whole contracted set. p[] doubles as both the ordinary alternating-tree
// parent pointer and the petal-walk pointer markPath installs.
type blossomState struct {
	base  []int
	p     []int
	used  []bool
	inBlq []bool // scratch: "is v's base inside the blossom just discovered"
}

// augmentOnce grows one alternating tree rooted at root and, if an
// augmenting path is found, flips it in place (mutating match).
func augmentOnce(view graph.View, n int, match []int, root int) {
	st := &blossomState{
		base:  make([]int, n),
		p:     make([]int, n),
		used:  make([]bool, n),
		inBlq: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		st.base[i] = i
		st.p[i] = -1
	}
	st.used[root] = true
	queue := []int{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for e := view.EdgeBegin(v); !view.EdgeEnd(v, e); view.EdgeInc(v, &e) {
			to := view.Target(v, e)
			if st.base[v] == st.base[to] || match[v] == to {
				continue
			}
			if to == root || (match[to] != -1 && st.p[match[to]] != -1) {
				lca := findLCA(st, match, v, to)
				for i := range st.inBlq {
					st.inBlq[i] = false
				}
				markPath(st, match, v, lca, to)
				markPath(st, match, to, lca, v)
				for i := 0; i < n; i++ {
					if st.inBlq[st.base[i]] {
						st.base[i] = lca
						if !st.used[i] {
							st.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if st.p[to] == -1 {
				st.p[to] = v
				if match[to] == -1 {
					flipPath(match, st.p, to)
					return
				}
				st.used[match[to]] = true
				queue = append(queue, match[to])
			}
		}
	}
}

// flipPath toggles every matched/unmatched edge along the tree path from
// found back to the root, growing the matching by one pair.
func flipPath(match []int, p []int, found int) {
	u := found
	for u != -1 {
		pv := p[u]
		ppv := match[pv]
		match[u] = pv
		match[pv] = u
		u = ppv
	}
}

// findLCA returns the base shared by a and b's alternating-tree paths back
// to the root — the node the new blossom will be based at.
func findLCA(st *blossomState, match []int, a, b int) int {
	visited := make([]bool, len(st.base))
	x := a
	for {
		x = st.base[x]
		visited[x] = true
		if match[x] == -1 {
			break
		}
		x = st.p[match[x]]
	}
	y := b
	for {
		y = st.base[y]
		if visited[y] {
			return y
		}
		y = st.p[match[y]]
	}
}

// markPath walks from v back toward blossomBase, marking every base
// encountered as belonging to the blossom being contracted and rewriting
// parent pointers so the petal can be traversed outward again after
// contraction. child is the node that "called" this walk from the other
// side of the newly found edge, threaded through so the two halves of the
// blossom's circle link up.
func markPath(st *blossomState, match []int, v, blossomBase, child int) {
	for st.base[v] != blossomBase {
		st.inBlq[st.base[v]] = true
		st.inBlq[st.base[match[v]]] = true
		st.p[v] = child
		child = match[v]
		v = st.p[match[v]]
	}
}
