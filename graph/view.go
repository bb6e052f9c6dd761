package graph

// Node is a dense, non-negative node handle. Every algorithm in this module
// addresses nodes through this type; a Container maps string vertex ids to
// Node values via Build.
type Node = int

// EdgeRef is an opaque, per-node edge handle. It is only meaningful together
// with the Node it was obtained from: EdgeRef values from two different nodes
// are not comparable. Concrete views implement it as an index into a node's
// adjacency slice.
type EdgeRef = int

// View is the abstract graph-iteration protocol every algorithm in this
// module is written against. Implementations must guarantee:
//   - iterating the edges of a node yields a finite sequence of edge handles;
//   - Target(n, e) for any e produced by that iteration is a valid node;
//   - handles are cheap to copy and hold no reference to mutable state that
//     can change during a single algorithm invocation.
type View interface {
	// NumNodes reports the number of nodes addressable as 0..NumNodes()-1.
	NumNodes() int
	// EdgeBegin returns the first edge handle of n, or EdgeEnd(n, .) == true
	// immediately if n has no outgoing edges.
	EdgeBegin(n Node) EdgeRef
	// EdgeInc advances *e to the next edge handle of n.
	EdgeInc(n Node, e *EdgeRef)
	// EdgeEnd reports whether e has advanced past the last edge handle of n.
	EdgeEnd(n Node, e EdgeRef) bool
	// Target resolves an edge handle obtained from n to the node it leads to.
	Target(n Node, e EdgeRef) Node
}

// WeightedView is a View whose edges carry a scalar weight, consumed by the
// weight-update algebras in package search and by every shortest-path, MST,
// and flow algorithm.
type WeightedView interface {
	View
	// Weight returns the weight of edge e as seen from n.
	Weight(n Node, e EdgeRef) float64
}

// Neighbor is one adjacency-list entry: the node it leads to and, for
// weighted graphs, the edge weight.
type Neighbor struct {
	To     Node
	Weight float64
}

// AdjacencyList is the canonical concrete View: a slice of neighbor slices
// indexed by Node. It implements WeightedView directly; unweighted callers
// may ignore Weight or leave all weights at zero.
//
// EdgeRef is simply the position of a neighbor within adj[n], so
// EdgeBegin/EdgeInc/EdgeEnd are O(1) slice-index arithmetic.
type AdjacencyList struct {
	adj [][]Neighbor
}

// NewAdjacencyList allocates an AdjacencyList over n nodes (0..n-1), all
// initially edge-less.
func NewAdjacencyList(n int) *AdjacencyList {
	return &AdjacencyList{adj: make([][]Neighbor, n)}
}

// AddEdge appends a directed edge from -> to with the given weight. Callers
// wanting an undirected edge add both directions explicitly.
func (a *AdjacencyList) AddEdge(from, to Node, weight float64) {
	a.adj[from] = append(a.adj[from], Neighbor{To: to, Weight: weight})
}

func (a *AdjacencyList) NumNodes() int { return len(a.adj) }

func (a *AdjacencyList) EdgeBegin(n Node) EdgeRef { return 0 }

func (a *AdjacencyList) EdgeInc(n Node, e *EdgeRef) { *e++ }

func (a *AdjacencyList) EdgeEnd(n Node, e EdgeRef) bool { return e >= len(a.adj[n]) }

func (a *AdjacencyList) Target(n Node, e EdgeRef) Node { return a.adj[n][e].To }

func (a *AdjacencyList) Weight(n Node, e EdgeRef) float64 { return a.adj[n][e].Weight }

// Neighbors returns the raw adjacency slice of n, for callers that prefer
// direct range iteration over the begin/inc/end protocol. The engines in
// package search do not use it: they iterate with begin/inc/end so
// FilteredView and JoinedView compose transparently.
func (a *AdjacencyList) Neighbors(n Node) []Neighbor { return a.adj[n] }
