package graph

// EdgeFilter reports whether an edge should be visible through a FilteredView.
type EdgeFilter func(n Node, e EdgeRef) bool

// FilteredView wraps a View, skipping edges for which Filter returns false.
// Both EdgeBegin and EdgeInc advance past rejected edges so EdgeEnd never
// observes a filtered-out handle.
type FilteredView struct {
	Base   View
	Filter EdgeFilter
}

// NewFilteredView returns a FilteredView over base using filter to decide
// edge visibility.
func NewFilteredView(base View, filter EdgeFilter) *FilteredView {
	return &FilteredView{Base: base, Filter: filter}
}

func (v *FilteredView) NumNodes() int { return v.Base.NumNodes() }

func (v *FilteredView) EdgeBegin(n Node) EdgeRef {
	e := v.Base.EdgeBegin(n)
	for !v.Base.EdgeEnd(n, e) && !v.Filter(n, e) {
		v.Base.EdgeInc(n, &e)
	}
	return e
}

func (v *FilteredView) EdgeInc(n Node, e *EdgeRef) {
	v.Base.EdgeInc(n, e)
	for !v.Base.EdgeEnd(n, *e) && !v.Filter(n, *e) {
		v.Base.EdgeInc(n, e)
	}
}

func (v *FilteredView) EdgeEnd(n Node, e EdgeRef) bool { return v.Base.EdgeEnd(n, e) }

func (v *FilteredView) Target(n Node, e EdgeRef) Node { return v.Base.Target(n, e) }

// joinedEdgeRef tags an underlying EdgeRef with which half of a JoinedView it
// came from, so Target can dispatch correctly.
type joinedEdgeRef struct {
	ref      EdgeRef
	fromB    bool
	bExhaust bool
}

// JoinedView concatenates two views defined over the same node set,
// presenting A's edges followed by B's edges for every node.
type JoinedView struct {
	A, B View
}

// NewJoinedView returns a View that yields A's edges of a node followed by
// B's edges of the same node.
func NewJoinedView(a, b View) *JoinedView { return &JoinedView{A: a, B: b} }

func (v *JoinedView) NumNodes() int { return v.A.NumNodes() }

// encodeJoined packs a joinedEdgeRef into the EdgeRef int space: even values
// address A, odd values address B, shifted by one bit. This keeps EdgeRef an
// int as required by the View interface while remaining unambiguous.
func encodeJoined(ref EdgeRef, fromB bool) EdgeRef {
	if fromB {
		return ref<<1 | 1
	}
	return ref << 1
}

func decodeJoined(e EdgeRef) (ref EdgeRef, fromB bool) {
	return e >> 1, e&1 == 1
}

func (v *JoinedView) EdgeBegin(n Node) EdgeRef {
	if aBegin := v.A.EdgeBegin(n); !v.A.EdgeEnd(n, aBegin) {
		return encodeJoined(aBegin, false)
	}
	return encodeJoined(v.B.EdgeBegin(n), true)
}

func (v *JoinedView) EdgeInc(n Node, e *EdgeRef) {
	ref, fromB := decodeJoined(*e)
	if !fromB {
		v.A.EdgeInc(n, &ref)
		if !v.A.EdgeEnd(n, ref) {
			*e = encodeJoined(ref, false)
			return
		}
		*e = encodeJoined(v.B.EdgeBegin(n), true)
		return
	}
	v.B.EdgeInc(n, &ref)
	*e = encodeJoined(ref, true)
}

func (v *JoinedView) EdgeEnd(n Node, e EdgeRef) bool {
	ref, fromB := decodeJoined(e)
	if !fromB {
		return false // A.EdgeEnd rolls into B.EdgeBegin inside EdgeInc/EdgeBegin
	}
	return v.B.EdgeEnd(n, ref)
}

func (v *JoinedView) Target(n Node, e EdgeRef) Node {
	ref, fromB := decodeJoined(e)
	if fromB {
		return v.B.Target(n, ref)
	}
	return v.A.Target(n, ref)
}
