package flow

import "context"

// preflowState holds the height/excess/current-edge bookkeeping shared by
// all three preflow-push orderings.
type preflowState struct {
	n       *Network
	height  []int
	excess  []float64
	curEdge []int
	source  int
	sink    int
}

func newPreflowState(n *Network, source, sink int) *preflowState {
	nn := n.NumNodes()
	s := &preflowState{
		n:       n,
		height:  make([]int, nn),
		excess:  make([]float64, nn),
		curEdge: make([]int, nn),
		source:  source,
		sink:    sink,
	}
	s.height[source] = nn
	for e := n.EdgeBegin(source); !n.EdgeEnd(source, e); n.EdgeInc(source, &e) {
		cap := n.ResidualCapacity(source, e)
		if cap <= 0 {
			continue
		}
		n.AddFlow(source, e, cap)
		t := n.Target(source, e)
		s.excess[t] += cap
		s.excess[source] -= cap
	}
	return s
}

// discharge pushes v's excess to lower-height neighbors along arcs with
// positive residual capacity, relabeling v whenever its current-edge cursor
// runs past its last arc, until v has no more excess. It reports whether v
// was relabeled at least once along the way.
func (s *preflowState) discharge(v int) (relabeled bool) {
	for s.excess[v] > 0 {
		if s.n.EdgeEnd(v, s.curEdge[v]) {
			s.relabel(v)
			relabeled = true
			continue
		}
		e := s.curEdge[v]
		cap := s.n.ResidualCapacity(v, e)
		t := s.n.Target(v, e)
		if cap > 0 && s.height[v] == s.height[t]+1 {
			delta := s.excess[v]
			if cap < delta {
				delta = cap
			}
			s.n.AddFlow(v, e, delta)
			s.excess[v] -= delta
			s.excess[t] += delta
		} else {
			s.curEdge[v]++
		}
	}
	return relabeled
}

// relabel sets v's height to one more than the minimum height among
// neighbors reachable via positive residual capacity, and rewinds v's
// current-edge cursor.
func (s *preflowState) relabel(v int) {
	min := -1
	for e := s.n.EdgeBegin(v); !s.n.EdgeEnd(v, e); s.n.EdgeInc(v, &e) {
		if s.n.ResidualCapacity(v, e) <= 0 {
			continue
		}
		t := s.n.Target(v, e)
		if min == -1 || s.height[t] < min {
			min = s.height[t]
		}
	}
	if min >= 0 {
		s.height[v] = min + 1
	}
	s.curEdge[v] = s.n.EdgeBegin(v)
}

func (s *preflowState) active(v int) bool {
	return v != s.source && v != s.sink && s.excess[v] > 0
}

// PreflowPushFIFO runs the FIFO preflow-push ordering: a ping-pong queue of
// currently-overflowing nodes, discharged front to back, with newly
// overflowed neighbors appended at the back.
func PreflowPushFIFO(ctx context.Context, n *Network, source, sink int) (float64, error) {
	if source == sink {
		return 0, nil
	}
	s := newPreflowState(n, source, sink)
	var queue []int
	queued := make([]bool, n.NumNodes())
	for v := 0; v < n.NumNodes(); v++ {
		if s.active(v) {
			queue = append(queue, v)
			queued[v] = true
		}
	}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		v := queue[0]
		queue = queue[1:]
		queued[v] = false
		s.discharge(v)
		for e := n.EdgeBegin(v); !n.EdgeEnd(v, e); n.EdgeInc(v, &e) {
			t := n.Target(v, e)
			if s.active(t) && !queued[t] {
				queue = append(queue, t)
				queued[t] = true
			}
		}
		if s.active(v) {
			queue = append(queue, v)
			queued[v] = true
		}
	}
	return -s.excess[source], nil
}

// PreflowPushHighestLabel always discharges the active node with the
// greatest height, breaking ties arbitrarily; it is re-selected by a linear
// scan each round, which is simple rather than asymptotically optimal.
func PreflowPushHighestLabel(ctx context.Context, n *Network, source, sink int) (float64, error) {
	if source == sink {
		return 0, nil
	}
	s := newPreflowState(n, source, sink)
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		best := -1
		for v := 0; v < n.NumNodes(); v++ {
			if s.active(v) && (best == -1 || s.height[v] > s.height[best]) {
				best = v
			}
		}
		if best == -1 {
			return -s.excess[source], nil
		}
		s.discharge(best)
	}
}

// PreflowPushRelabelToFront maintains an ordered list of every node except
// source and sink; it discharges each list entry in order, and whenever a
// discharge relabels a node, that node is moved to the front of the list and
// the scan restarts from there.
func PreflowPushRelabelToFront(ctx context.Context, n *Network, source, sink int) (float64, error) {
	if source == sink {
		return 0, nil
	}
	s := newPreflowState(n, source, sink)
	var list []int
	for v := 0; v < n.NumNodes(); v++ {
		if v != source && v != sink {
			list = append(list, v)
		}
	}
	i := 0
	for i < len(list) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		v := list[i]
		oldHeight := s.height[v]
		s.discharge(v)
		if s.height[v] != oldHeight {
			// move v to front, restart scan from position 0
			j := i
			for j > 0 {
				list[j] = list[j-1]
				j--
			}
			list[0] = v
			i = 0
			continue
		}
		i++
	}
	return -s.excess[source], nil
}
