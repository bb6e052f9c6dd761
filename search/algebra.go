package search

// Algebra is the weight-update algebra that parameterises every
// priority search: a triple (Init, Combine, Priority). Init returns the
// source node's label; Combine relaxes a node's label across an edge of the
// given weight; Priority reports whether candidate label a should replace
// label b. Any algebra satisfying monotonicity — combine never improves
// priority along concatenation — guarantees PrioritySearch converges to the
// globally optimal label.
type Algebra interface {
	Init() float64
	Combine(label, weight float64) float64
	Priority(a, b float64) bool
}

// MinSum is the shortest-path algebra: init 0, combine a+w, lower wins.
type MinSum struct{}

func (MinSum) Init() float64                    { return 0 }
func (MinSum) Combine(label, weight float64) float64 { return label + weight }
func (MinSum) Priority(a, b float64) bool       { return a < b }

// MSTEdge is the Prim MST algebra: the label of a node is the weight of the
// cheapest edge currently crossing into the tree.
type MSTEdge struct{}

func (MSTEdge) Init() float64                    { return 0 }
func (MSTEdge) Combine(label, weight float64) float64 { return weight }
func (MSTEdge) Priority(a, b float64) bool       { return a < b }

// MaxFlowAugment is the widest-augmenting-path algebra: the label of a node
// is the bottleneck residual capacity along the best path found so far.
type MaxFlowAugment struct {
	// Cap seeds the source's label; it should be at least as large as any
	// possible augmenting path's bottleneck (e.g. the sum of source-edge
	// capacities, or +Inf).
	Cap float64
}

func (a MaxFlowAugment) Init() float64 { return a.Cap }
func (MaxFlowAugment) Combine(label, weight float64) float64 {
	if weight < label {
		return weight
	}
	return label
}
func (MaxFlowAugment) Priority(a, b float64) bool { return a > b }
