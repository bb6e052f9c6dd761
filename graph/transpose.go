package graph

// Reverse builds the transposed view of a WeightedView: an AdjacencyList
// with every edge's direction flipped, weight preserved. Used by algorithms
// that need to walk a directed graph backwards (Kosaraju's second DFS).
func Reverse(view WeightedView) *AdjacencyList {
	n := view.NumNodes()
	out := NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
			v := view.Target(u, e)
			out.AddEdge(v, u, view.Weight(u, e))
		}
	}
	return out
}
