package flow

// arc is one directed traversal step in the residual network: the pipe it
// resolves to, and whether it is being walked forward (a->b) or backward
// (b->a) relative to that pipe's declared endpoints.
type arc struct {
	to      int
	pipe    int
	forward bool
}

// Network is the residual network: an adjacency list built from a
// list of Pipe values, where each pipe contributes one arc to each of its
// two endpoints' adjacency entries. Network implements graph.WeightedView
// with Weight equal to the live residual capacity of the traversed arc, so
// every traversal and priority-search engine in this module can drive a
// max-flow or min-cost-flow procedure directly.
type Network struct {
	pipes []Pipe
	adj   [][]arc
}

// NewNetwork builds a Network over numNodes nodes from pipes. Every pipe
// contributes an arc from a to b (forward) and from b to a (backward).
func NewNetwork(numNodes int, pipes []Pipe) *Network {
	n := &Network{pipes: pipes, adj: make([][]arc, numNodes)}
	for i, p := range pipes {
		a, b := p.Endpoints()
		n.adj[a] = append(n.adj[a], arc{to: b, pipe: i, forward: true})
		n.adj[b] = append(n.adj[b], arc{to: a, pipe: i, forward: false})
	}
	return n
}

func (n *Network) NumNodes() int { return len(n.adj) }

func (n *Network) EdgeBegin(u int) int { return 0 }

func (n *Network) EdgeInc(u int, e *int) { *e++ }

func (n *Network) EdgeEnd(u int, e int) bool { return e >= len(n.adj[u]) }

func (n *Network) Target(u int, e int) int { return n.adj[u][e].to }

// Weight reports the residual capacity of arc e as seen from u.
func (n *Network) Weight(u int, e int) float64 { return n.ResidualCapacity(u, e) }

// ResidualCapacity reports how much more flow can be pushed along arc e
// (obtained from u's adjacency) in the direction it is currently being
// walked.
func (n *Network) ResidualCapacity(u int, e int) float64 {
	a := n.adj[u][e]
	p := n.pipes[a.pipe]
	if a.forward {
		return p.ResidualForward()
	}
	return p.ResidualBackward()
}

// Pipe returns the underlying pipe that arc e (from u) resolves to, and
// whether it is being walked in its declared a->b direction.
func (n *Network) Pipe(u int, e int) (Pipe, bool) {
	a := n.adj[u][e]
	return n.pipes[a.pipe], a.forward
}

// AddFlow pushes delta units of flow along arc e as seen from u.
func (n *Network) AddFlow(u int, e int, delta float64) {
	a := n.adj[u][e]
	if a.forward {
		n.pipes[a.pipe].AddFlow(delta)
	} else {
		n.pipes[a.pipe].AddFlow(-delta)
	}
}

// ReducedCost returns arc e's cost adjusted by node potentials pot, per the
// Johnson/Edmonds-Karp transform used by package mincostflow: forward arcs
// cost cost + pot[from] - pot[to]; backward arcs, which carry the pipe's cost
// negated, cost -cost + pot[from] - pot[to]. Arcs whose pipe is not a
// CostedPipe report zero cost.
func (n *Network) ReducedCost(u int, e int, pot []float64) float64 {
	a := n.adj[u][e]
	cp, ok := n.pipes[a.pipe].(CostedPipe)
	if !ok {
		return 0
	}
	v := a.to
	if a.forward {
		return cp.Cost() + pot[u] - pot[v]
	}
	return pot[u] - pot[v] - cp.Cost()
}

// FlowEdge is one (from, to, flow) triple in the extracted flow assignment.
type FlowEdge struct {
	From, To int
	Flow     float64
}

// Flows reports, for every pipe, the net flow oriented in whichever
// direction carries a non-negative amount (so a BidirectPipe with negative
// net flow is reported b->a rather than as a negative a->b value).
func (n *Network) Flows() []FlowEdge {
	out := make([]FlowEdge, 0, len(n.pipes))
	for _, p := range n.pipes {
		a, b := p.Endpoints()
		f := p.Flow()
		if f >= 0 {
			out = append(out, FlowEdge{From: a, To: b, Flow: f})
		} else {
			out = append(out, FlowEdge{From: b, To: a, Flow: -f})
		}
	}
	return out
}
