package flow

// Pipe is one edge of a residual network: it owns a flow value and can
// report, from either endpoint's perspective, how much additional flow it
// can currently accept, and accept a flow increment.
type Pipe interface {
	// Endpoints returns the pipe's two node ids, a then b.
	Endpoints() (a, b int)
	// ResidualForward is the residual capacity in the a->b direction.
	ResidualForward() float64
	// ResidualBackward is the residual capacity in the b->a direction.
	ResidualBackward() float64
	// AddFlow increases the a->b flow by delta (delta may be negative to
	// push flow b->a).
	AddFlow(delta float64)
	// Flow returns the current signed a->b flow.
	Flow() float64
}

// CostedPipe is a Pipe that also carries a per-unit cost, consumed by
// package mincostflow's reduced-cost computation.
type CostedPipe interface {
	Pipe
	Cost() float64
}

// DirectPipe is a one-way pipe of fixed capacity: residual forward is
// capacity minus flow, residual backward is the flow already pushed (which
// can be cancelled).
type DirectPipe struct {
	A, B     int
	Capacity float64
	flow     float64
}

// NewDirectPipe constructs a DirectPipe from a to b with the given capacity.
func NewDirectPipe(a, b int, capacity float64) *DirectPipe {
	return &DirectPipe{A: a, B: b, Capacity: capacity}
}

func (p *DirectPipe) Endpoints() (int, int)    { return p.A, p.B }
func (p *DirectPipe) ResidualForward() float64 { return p.Capacity - p.flow }
func (p *DirectPipe) ResidualBackward() float64 { return p.flow }
func (p *DirectPipe) AddFlow(delta float64)    { p.flow += delta }
func (p *DirectPipe) Flow() float64            { return p.flow }

// BidirectPipe carries two independent capacities, one per direction, that
// share a single signed flow value: pushing flow a->b consumes CapAB and
// simultaneously frees up an equal amount of CapBA (and vice versa), so the
// two residuals transfer one-to-one on every flow update.
type BidirectPipe struct {
	A, B         int
	CapAB, CapBA float64
	flow         float64 // positive: net a->b
}

// NewBidirectPipe constructs a BidirectPipe with independent per-direction
// capacities.
func NewBidirectPipe(a, b int, capAB, capBA float64) *BidirectPipe {
	return &BidirectPipe{A: a, B: b, CapAB: capAB, CapBA: capBA}
}

func (p *BidirectPipe) Endpoints() (int, int)     { return p.A, p.B }
func (p *BidirectPipe) ResidualForward() float64  { return p.CapAB - p.flow }
func (p *BidirectPipe) ResidualBackward() float64 { return p.CapBA + p.flow }
func (p *BidirectPipe) AddFlow(delta float64)     { p.flow += delta }
func (p *BidirectPipe) Flow() float64             { return p.flow }

// CostedDirectPipe extends DirectPipe with a scalar cost charged per unit of
// a->b flow, used by min-cost flow.
type CostedDirectPipe struct {
	DirectPipe
	PerUnitCost float64
}

// NewCostedDirectPipe constructs a CostedDirectPipe.
func NewCostedDirectPipe(a, b int, capacity, cost float64) *CostedDirectPipe {
	return &CostedDirectPipe{DirectPipe: DirectPipe{A: a, B: b, Capacity: capacity}, PerUnitCost: cost}
}

func (p *CostedDirectPipe) Cost() float64 { return p.PerUnitCost }
