package matching

import "math"

// eps is the tightness tolerance for the dual arithmetic below: an edge is
// "tight" when its slack against the potentials is within eps of zero, and a
// blossom is expandable when its potential is within eps of zero. All inputs
// are assumed to be well-scaled floats (test catalogues use small integers).
const eps = 1e-9

const wbInf = math.MaxFloat64 / 4

// wbEdge is one edge record in the dense blossom tableau. u and v are always
// terminal (1-indexed original) nodes, even when the record is stored in a
// slot addressed by a blossom id: g[b][x] remembers the best concrete
// terminal pair realising a connection between top-level nodes b and x.
type wbEdge struct {
	u, v int
	w    float64
}

// weightedBlossom is the dual-potential machinery for maximum-weight
// matching on general graphs:
// the Hungarian alternating-tree scheme extended with blossom contraction.
// Terminals are 1..n; contracted blossoms occupy ids n+1..nx. Every node
// carries a potential lab; an edge is usable when the potentials make it
// tight. Four per-round minima drive matching()'s delta
// computation: tightening an external edge, tightening an edge between two
// external nodes (which either augments or contracts a new blossom at the
// pair's least common ancestor), halving an internal blossom's potential to
// zero (which expands it), and an external terminal's own potential
// reaching zero (which exposes it, terminating the whole search since no
// further augmentation can gain weight).
//
// Weights are doubled on entry so every dual update stays integral when the
// input weights are integral; dist (the slack of an edge against the
// potentials) is lab[u] + lab[v] - 2w in the original scale.
type weightedBlossom struct {
	n, nx int
	g     [][]wbEdge
	ex    [][]bool // edge existence; the tableau keeps zero-slots for absent pairs
	lab   []float64
	match []int // match[x] = matched terminal, 0 if unmatched
	slack []int // slack[x] = terminal u minimising dist(g[u][x]), 0 if none
	st    []int // st[x] = top-level node currently containing x
	pa    []int // alternating-tree parent (a terminal id)
	side  []int // 0 external, 1 internal, -1 outside the tree
	// flower[b] is the blossom's circular child list, base first, with
	// matched and unmatched edges alternating along it; flowerFrom[b][x] is
	// the child of b containing terminal x.
	flower     [][]int
	flowerFrom [][]int
	vis        []int
	stamp      int
	q          []int
}

func newWeightedBlossom(n int) *weightedBlossom {
	m := 2*n + 1
	wb := &weightedBlossom{
		n:          n,
		nx:         n,
		g:          make([][]wbEdge, m),
		ex:         make([][]bool, m),
		lab:        make([]float64, m),
		match:      make([]int, m),
		slack:      make([]int, m),
		st:         make([]int, m),
		pa:         make([]int, m),
		side:       make([]int, m),
		flower:     make([][]int, m),
		flowerFrom: make([][]int, m),
		vis:        make([]int, m),
	}
	for i := 0; i < m; i++ {
		wb.g[i] = make([]wbEdge, m)
		wb.ex[i] = make([]bool, m)
		for j := 0; j < m; j++ {
			wb.g[i][j] = wbEdge{u: i, v: j}
		}
		wb.flowerFrom[i] = make([]int, n+1)
	}
	for i := 1; i <= n; i++ {
		wb.st[i] = i
		wb.flowerFrom[i][i] = i
	}
	return wb
}

// setEdge records an undirected edge between 1-indexed terminals u and v.
func (wb *weightedBlossom) setEdge(u, v int, w float64) {
	wb.g[u][v] = wbEdge{u: u, v: v, w: 2 * w}
	wb.g[v][u] = wbEdge{u: v, v: u, w: 2 * w}
	wb.ex[u][v], wb.ex[v][u] = true, true
}

// dist is the slack of e against the current potentials; a tight edge has
// dist zero and can join the alternating tree.
func (wb *weightedBlossom) dist(e wbEdge) float64 { return wb.lab[e.u] + wb.lab[e.v] - e.w }

func (wb *weightedBlossom) updateSlack(u, x int) {
	if wb.slack[x] == 0 || wb.dist(wb.g[u][x]) < wb.dist(wb.g[wb.slack[x]][x]) {
		wb.slack[x] = u
	}
}

func (wb *weightedBlossom) setSlack(x int) {
	wb.slack[x] = 0
	for u := 1; u <= wb.n; u++ {
		if wb.ex[u][x] && wb.st[u] != x && wb.side[wb.st[u]] == 0 {
			wb.updateSlack(u, x)
		}
	}
}

// qPush enqueues a top-level node's terminals for edge scanning.
func (wb *weightedBlossom) qPush(x int) {
	if x <= wb.n {
		wb.q = append(wb.q, x)
		return
	}
	for _, f := range wb.flower[x] {
		wb.qPush(f)
	}
}

func (wb *weightedBlossom) setSt(x, b int) {
	wb.st[x] = b
	if x > wb.n {
		for _, f := range wb.flower[x] {
			wb.setSt(f, b)
		}
	}
}

// getPr locates child xr on b's circle and returns its even-parity position,
// reversing the circle's tail first if xr sits at an odd position, so the
// walk from the base to xr always alternates matched/unmatched correctly.
func (wb *weightedBlossom) getPr(b, xr int) int {
	pr := 0
	for i, f := range wb.flower[b] {
		if f == xr {
			pr = i
		}
	}
	if pr%2 == 1 {
		fl := wb.flower[b]
		for i, j := 1, len(fl)-1; i < j; i, j = i+1, j-1 {
			fl[i], fl[j] = fl[j], fl[i]
		}
		return len(fl) - pr
	}
	return pr
}

// setMatch matches top-level u to top-level v through the concrete terminal
// edge recorded in g[u][v]. For a blossom it re-expresses the match through
// the blossom's circle: the child actually touching the edge becomes the new
// base, and the even prefix of the circle is re-matched pairwise so the
// ground-level matching stays alternating.
func (wb *weightedBlossom) setMatch(u, v int) {
	e := wb.g[u][v]
	wb.match[u] = e.v
	if u <= wb.n {
		return
	}
	xr := wb.flowerFrom[u][e.u]
	pr := wb.getPr(u, xr)
	for i := 0; i < pr; i++ {
		wb.setMatch(wb.flower[u][i], wb.flower[u][i^1])
	}
	wb.setMatch(xr, v)
	fl := wb.flower[u]
	rot := make([]int, 0, len(fl))
	rot = append(rot, fl[pr:]...)
	rot = append(rot, fl[:pr]...)
	wb.flower[u] = rot
}

// augment flips matched/unmatched along the alternating tree path from the
// tight edge (u, v) back to the exposed root.
func (wb *weightedBlossom) augment(u, v int) {
	for {
		xnv := wb.st[wb.match[u]]
		wb.setMatch(u, v)
		if xnv == 0 {
			return
		}
		wb.setMatch(xnv, wb.st[wb.pa[xnv]])
		u, v = wb.st[wb.pa[xnv]], xnv
	}
}

// lca walks both nodes' alternating-tree paths toward their roots in
// lockstep and returns the first common top-level node, or 0 when the two
// nodes lie in different trees (in which case the edge joins two exposed
// roots and augments instead of contracting).
func (wb *weightedBlossom) lca(u, v int) int {
	wb.stamp++
	for u != 0 || v != 0 {
		if u != 0 {
			if wb.vis[u] == wb.stamp {
				return u
			}
			wb.vis[u] = wb.stamp
			u = wb.st[wb.match[u]]
			if u != 0 {
				u = wb.st[wb.pa[u]]
			}
		}
		u, v = v, u
	}
	return 0
}

// addBlossom contracts the odd cycle formed by tree edge paths u->lca and
// v->lca plus the tight edge (u, v) into one new top-level node with zero
// potential, inheriting the cheapest tableau edge to every other node from
// its members.
func (wb *weightedBlossom) addBlossom(u, anc, v int) {
	b := wb.n + 1
	for b <= wb.nx && wb.st[b] != 0 {
		b++
	}
	if b > wb.nx {
		wb.nx++
	}
	wb.lab[b] = 0
	wb.side[b] = 0
	wb.match[b] = wb.match[anc]
	wb.pa[b] = wb.pa[anc]
	wb.flower[b] = []int{anc}
	for x := u; x != anc; {
		wb.flower[b] = append(wb.flower[b], x)
		y := wb.st[wb.match[x]]
		wb.flower[b] = append(wb.flower[b], y)
		wb.qPush(y)
		x = wb.st[wb.pa[y]]
	}
	fl := wb.flower[b]
	for i, j := 1, len(fl)-1; i < j; i, j = i+1, j-1 {
		fl[i], fl[j] = fl[j], fl[i]
	}
	for x := v; x != anc; {
		wb.flower[b] = append(wb.flower[b], x)
		y := wb.st[wb.match[x]]
		wb.flower[b] = append(wb.flower[b], y)
		wb.qPush(y)
		x = wb.st[wb.pa[y]]
	}
	wb.setSt(b, b)
	for x := 1; x <= wb.nx; x++ {
		wb.ex[b][x], wb.ex[x][b] = false, false
	}
	for x := 1; x <= wb.n; x++ {
		wb.flowerFrom[b][x] = 0
	}
	for _, xs := range wb.flower[b] {
		for x := 1; x <= wb.nx; x++ {
			if wb.ex[xs][x] && (!wb.ex[b][x] || wb.dist(wb.g[xs][x]) < wb.dist(wb.g[b][x])) {
				wb.g[b][x] = wb.g[xs][x]
				wb.g[x][b] = wb.g[x][xs]
				wb.ex[b][x], wb.ex[x][b] = true, true
			}
		}
		for x := 1; x <= wb.n; x++ {
			if wb.flowerFrom[xs][x] != 0 {
				wb.flowerFrom[b][x] = xs
			}
		}
	}
	wb.setSlack(b)
}

// expandBlossom dissolves an internal blossom whose potential reached zero,
// restoring its children as top-level nodes: the even prefix of the circle
// up to the child attached to the tree re-enters as alternating
// internal/external pairs, the attached child becomes internal, and the
// rest leave the tree.
func (wb *weightedBlossom) expandBlossom(b int) {
	for _, f := range wb.flower[b] {
		wb.setSt(f, f)
	}
	xr := wb.flowerFrom[b][wb.g[b][wb.pa[b]].u]
	pr := wb.getPr(b, xr)
	for i := 0; i < pr; i += 2 {
		xs := wb.flower[b][i]
		xns := wb.flower[b][i+1]
		wb.pa[xs] = wb.g[xns][xs].u
		wb.side[xs] = 1
		wb.side[xns] = 0
		wb.slack[xs] = 0
		wb.setSlack(xns)
		wb.qPush(xns)
	}
	wb.side[xr] = 1
	wb.pa[xr] = wb.pa[b]
	for i := pr + 1; i < len(wb.flower[b]); i++ {
		xs := wb.flower[b][i]
		wb.side[xs] = -1
		wb.setSlack(xs)
	}
	wb.st[b] = 0
}

// onFoundEdge processes a tight edge out of the tree's external frontier:
// into an unvisited matched node it grows the tree by two levels; between
// two external nodes it either augments (different trees) or contracts a
// blossom (same tree). Reports whether an augmentation happened.
func (wb *weightedBlossom) onFoundEdge(e wbEdge) bool {
	u, v := wb.st[e.u], wb.st[e.v]
	switch wb.side[v] {
	case -1:
		wb.pa[v] = e.u
		wb.side[v] = 1
		nu := wb.st[wb.match[v]]
		wb.slack[v] = 0
		wb.slack[nu] = 0
		wb.side[nu] = 0
		wb.qPush(nu)
	case 0:
		anc := wb.lca(u, v)
		if anc == 0 {
			wb.augment(u, v)
			wb.augment(v, u)
			return true
		}
		wb.addBlossom(u, anc, v)
	}
	return false
}

// matching runs one dual-adjustment round: grow alternating trees from every
// exposed top-level node until an augmenting path is found (true) or no
// further weight gain is possible (false — an external terminal's potential
// hit zero, or no tree move exists at any finite delta).
func (wb *weightedBlossom) matching() bool {
	for i := 1; i <= wb.nx; i++ {
		wb.side[i] = -1
		wb.slack[i] = 0
	}
	wb.q = wb.q[:0]
	for x := 1; x <= wb.nx; x++ {
		if wb.st[x] == x && wb.match[x] == 0 {
			wb.pa[x] = 0
			wb.side[x] = 0
			wb.qPush(x)
		}
	}
	if len(wb.q) == 0 {
		return false
	}
	for {
		for len(wb.q) > 0 {
			u := wb.q[0]
			wb.q = wb.q[1:]
			if wb.side[wb.st[u]] == 1 {
				continue
			}
			for v := 1; v <= wb.n; v++ {
				if !wb.ex[u][v] || wb.st[u] == wb.st[v] {
					continue
				}
				if wb.dist(wb.g[u][v]) <= eps {
					if wb.onFoundEdge(wb.g[u][v]) {
						return true
					}
				} else {
					wb.updateSlack(u, wb.st[v])
				}
			}
		}
		d := wbInf
		for b := wb.n + 1; b <= wb.nx; b++ {
			if wb.st[b] == b && wb.side[b] == 1 && wb.lab[b]/2 < d {
				d = wb.lab[b] / 2
			}
		}
		for x := 1; x <= wb.nx; x++ {
			if wb.st[x] == x && wb.slack[x] != 0 {
				dd := wb.dist(wb.g[wb.slack[x]][x])
				switch wb.side[x] {
				case -1:
					if dd < d {
						d = dd
					}
				case 0:
					if dd/2 < d {
						d = dd / 2
					}
				}
			}
		}
		for u := 1; u <= wb.n; u++ {
			switch wb.side[wb.st[u]] {
			case 0:
				wb.lab[u] -= d
				if wb.lab[u] <= eps {
					return false
				}
			case 1:
				wb.lab[u] += d
			}
		}
		for b := wb.n + 1; b <= wb.nx; b++ {
			if wb.st[b] == b && wb.side[b] != -1 {
				if wb.side[b] == 0 {
					wb.lab[b] += 2 * d
				} else {
					wb.lab[b] -= 2 * d
				}
			}
		}
		wb.q = wb.q[:0]
		for x := 1; x <= wb.nx; x++ {
			if wb.st[x] == x && wb.slack[x] != 0 && wb.st[wb.slack[x]] != x && wb.dist(wb.g[wb.slack[x]][x]) <= eps {
				if wb.onFoundEdge(wb.g[wb.slack[x]][x]) {
					return true
				}
			}
		}
		for b := wb.n + 1; b <= wb.nx; b++ {
			if wb.st[b] == b && wb.side[b] == 1 && wb.lab[b] <= eps {
				wb.expandBlossom(b)
			}
		}
	}
}

// solve seeds every terminal's potential to the maximum edge weight and
// augments until no round gains weight.
func (wb *weightedBlossom) solve() {
	wMax := 0.0
	for u := 1; u <= wb.n; u++ {
		for v := 1; v <= wb.n; v++ {
			if wb.ex[u][v] && wb.g[u][v].w > wMax {
				wMax = wb.g[u][v].w
			}
		}
	}
	for u := 1; u <= wb.n; u++ {
		wb.lab[u] = wMax
	}
	for wb.matching() {
	}
}

// GeneralMaxWeight computes a maximum-weight matching on a general
// (non-bipartite) graph of n nodes given as a symmetric weight matrix:
// w[i][j] > 0 and finite means an edge of that weight, anything else means
// no edge (a maximum-weight matching never uses a non-positive edge, so
// such entries are dropped rather than rejected). The matching maximises
// total weight, not cardinality: a single heavy edge beats two light ones.
func GeneralMaxWeight(w [][]float64, n int) Result {
	wb := newWeightedBlossom(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w[i][j] > 0 && !math.IsInf(w[i][j], 1) {
				wb.setEdge(i+1, j+1, w[i][j])
			}
		}
	}
	wb.solve()

	res := Result{Match: identityMatch(n)}
	for u := 1; u <= n; u++ {
		if wb.match[u] != 0 {
			res.Match[u-1] = wb.match[u] - 1
		}
	}
	for i := 0; i < n; i++ {
		if j := res.Match[i]; j > i {
			res.Size++
			res.Weight += w[i][j]
		}
	}
	return res
}

// GeneralMinCostPerfect computes a minimum-cost perfect matching on a
// general graph of n nodes from a symmetric cost matrix; a math.Inf(1)
// entry forbids that pairing. This is the perfect variant of the
// weighted blossom scheme, realised by a shift: costs are flipped into weights large enough that the
// maximum-weight matching is maximum-cardinality first and cheapest second.
// ok is false when no perfect matching exists at finite cost (including any
// odd n).
func GeneralMinCostPerfect(cost [][]float64, n int) (Result, bool) {
	if n == 0 {
		return Result{Match: identityMatch(0)}, true
	}
	if n%2 == 1 {
		return Result{Match: identityMatch(n)}, false
	}

	costSum := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !math.IsInf(cost[i][j], 1) {
				costSum += math.Abs(cost[i][j])
			}
		}
	}
	shift := float64(n+1)*costSum + 1

	wb := newWeightedBlossom(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !math.IsInf(cost[i][j], 1) {
				wb.setEdge(i+1, j+1, shift-cost[i][j])
			}
		}
	}
	wb.solve()

	res := Result{Match: identityMatch(n)}
	ok := true
	for u := 1; u <= n; u++ {
		if wb.match[u] == 0 {
			ok = false
			continue
		}
		res.Match[u-1] = wb.match[u] - 1
	}
	for i := 0; i < n; i++ {
		if j := res.Match[i]; j > i {
			res.Size++
			res.Weight += cost[i][j]
		}
	}
	return res, ok
}
