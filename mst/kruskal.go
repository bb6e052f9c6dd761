package mst

import (
	"context"
	"sort"

	"github.com/gographlib/algo/graph"
	"github.com/gographlib/algo/search"
)

// unionFind is the weighted union-find used by Kruskal: parent and subtree
// weight arrays, union by weight, and find that walks to the root without
// path compression — acceptable since the graphs this module targets are
// bounded by edge count.
type unionFind struct {
	parent []int
	weight []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), weight: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.weight[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		x = uf.parent[x]
	}
	return x
}

// union merges the components of a and b, attaching the lighter subtree
// under the heavier one's root, and reports whether a merge happened (false
// if a and b were already in the same component).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.weight[ra] < uf.weight[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.weight[ra] += uf.weight[rb]
	return true
}

type weightedEdge struct {
	u, v graph.Node
	e    graph.EdgeRef
	w    float64
}

// Kruskal collects every edge reachable from root by BFS over the
// undirected view, sorts them by weight, then repeatedly takes the cheapest
// edge whose endpoints are in different union-find components, emitting it
// through emit and uniting the components, until nodes-1 edges have been
// emitted or no edge remains. emit may be nil if the caller only needs the
// aggregate Result.
func Kruskal(ctx context.Context, view graph.WeightedView, root graph.Node, emit func(u, v graph.Node, e graph.EdgeRef, w float64)) (Result, error) {
	var edges []weightedEdge
	adapter := &search.Hooks{
		Process: func(u int, e graph.EdgeRef) bool {
			edges = append(edges, weightedEdge{u: u, v: view.Target(u, e), e: e, w: view.Weight(u, e)})
			return true
		},
	}
	ts, _, err := search.BFS(ctx, view, root, adapter, true)
	if err != nil {
		return Result{}, err
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].w < edges[j].w })

	n := view.NumNodes()
	uf := newUnionFind(n)
	reachable := 0
	for u := 0; u < n; u++ {
		if ts.InTree(u) {
			reachable++
		}
	}

	var res Result
	for _, we := range edges {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		if res.Nodes >= reachable-1 {
			break
		}
		if uf.union(we.u, we.v) {
			res.Weight += we.w
			res.Nodes++
			if emit != nil {
				emit(we.u, we.v, we.e, we.w)
			}
		}
	}
	res.Nodes++ // edges emitted = nodes - 1, so the tree spans Nodes+1 vertices
	return res, nil
}
