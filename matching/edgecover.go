package matching

import "math"

// MinWeightEdgeCover computes a minimum-total-weight edge cover of a general
// graph of n nodes given as a symmetric weight matrix (math.Inf(1) means no
// edge, finite entries are non-negative edge weights). Every node must end
// up incident to at least one chosen edge; ok is false when that is
// impossible, i.e. some node has no incident edge at all.
//
// The cover is recovered from a matching: pairing two nodes by an edge of
// weight w saves cheapest(i) + cheapest(j) - w over covering each by its own
// cheapest incident edge, so a maximum-weight matching under those savings
// as weights picks exactly the pairs worth merging. Matched pairs
// contribute their shared edge; every node left unmatched takes its
// cheapest incident edge — which may touch an already-covered neighbour, so
// a node can accumulate several covering edges.
//
// The result is an adjacency list: cover[i] holds the neighbours i is
// covered with (both endpoints list each chosen edge).
func MinWeightEdgeCover(w [][]float64, n int) (cover [][]int, total float64, ok bool) {
	cover = make([][]int, n)
	if n == 0 {
		return cover, 0, true
	}

	cheapest := make([]int, n)
	for i := 0; i < n; i++ {
		cheapest[i] = -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if j != i && w[i][j] < best {
				best = w[i][j]
				cheapest[i] = j
			}
		}
		if cheapest[i] == -1 {
			return nil, 0, false
		}
	}

	saving := make([][]float64, n)
	for i := range saving {
		saving[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !math.IsInf(w[i][j], 1) {
				s := w[i][cheapest[i]] + w[j][cheapest[j]] - w[i][j]
				saving[i][j], saving[j][i] = s, s
			}
		}
	}
	m := GeneralMaxWeight(saving, n)

	for i := 0; i < n; i++ {
		if j := m.Match[i]; j > i {
			cover[i] = append(cover[i], j)
			cover[j] = append(cover[j], i)
			total += w[i][j]
		} else if j == i {
			c := cheapest[i]
			cover[i] = append(cover[i], c)
			cover[c] = append(cover[c], i)
			total += w[i][c]
		}
	}
	return cover, total, true
}
