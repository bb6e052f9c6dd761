package matching

import "math"

// bigM stands in for "no edge" (an infinite cost clamped to a large finite
// sentinel) so the potential arithmetic below never produces NaN from
// Inf-Inf.
const bigM = 1e15

// HungarianMinCost computes a minimum-total-cost matching between nLeft and
// nRight nodes from a dense cost matrix (cost[i][j], i in [0,nLeft), j in
// [0,nRight)); a math.Inf(1) entry forbids that pairing. Implements the
// classical bipartite weighted algorithm: dual potentials on each side,
// grown via an alternating tree per unmatched left node, tightening the
// minimum-slack edge at each step until an unmatched right
// node is reached and the tree augments.
//
// If requirePerfect is true, every left node must end up matched to a real
// right node (the perfect variant, where only the tightening
// case is allowed); if no such assignment exists at finite cost, ok is
// false. If requirePerfect is false, a left or right node may be left
// unmatched at zero additional cost. Root exposure is realised as a
// padding transformation: the smaller side is padded with dummy nodes
// connected to everything at cost zero, so the same tightening-only loop
// solves both variants without a second case inside it.
func HungarianMinCost(cost [][]float64, nLeft, nRight int, requirePerfect bool) (Result, bool) {
	size := nLeft
	if nRight > size {
		size = nRight
	}
	if size == 0 {
		return Result{Match: identityMatch(nLeft + nRight)}, true
	}

	a := make([][]float64, size)
	for i := range a {
		a[i] = make([]float64, size)
		for j := range a[i] {
			switch {
			case i < nLeft && j < nRight:
				a[i][j] = clamp(cost[i][j])
			case i < nLeft: // real left, dummy right column
				if requirePerfect {
					a[i][j] = bigM
				} else {
					a[i][j] = 0
				}
			default: // dummy row: always free to absorb a real or dummy column
				a[i][j] = 0
			}
		}
	}

	// 1-indexed Hungarian arrays (index 0 is the sentinel "no column yet").
	u := make([]float64, size+1)
	v := make([]float64, size+1)
	p := make([]int, size+1) // p[j] = row currently assigned to column j, 0 if none
	way := make([]int, size+1)

	for i := 1; i <= size; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, size+1)
		used := make([]bool, size+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := -1
			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				cur := a[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= size; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	n := nLeft + nRight
	match := identityMatch(n)
	ok := true
	var weight float64
	colOf := make([]int, size) // colOf[row-1] = column-1 assigned to that row
	for j := 1; j <= size; j++ {
		if p[j] != 0 {
			colOf[p[j]-1] = j - 1
		}
	}
	for i := 0; i < nLeft; i++ {
		j := colOf[i]
		// An assignment landing on a dummy column or a forbidden (clamped)
		// entry means this node stays exposed; under the perfect variant
		// that is an infeasibility.
		if j < nRight && !math.IsInf(cost[i][j], 1) {
			match[i] = nLeft + j
			match[nLeft+j] = i
			weight += cost[i][j]
		} else if requirePerfect {
			ok = false
		}
	}

	size2 := 0
	for i := 0; i < nLeft; i++ {
		if match[i] != i {
			size2++
		}
	}
	return Result{Match: match, Size: size2, Weight: weight}, ok
}

func clamp(w float64) float64 {
	if math.IsInf(w, 1) || w > bigM {
		return bigM
	}
	return w
}
