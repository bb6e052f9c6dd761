package matching

import (
	"context"

	"github.com/gographlib/algo/graph"
)

// BipartiteCardinality computes a maximum-cardinality matching on a
// bipartite graph whose left partition is nodes [0, nLeft) and whose right
// partition is nodes [nLeft, nLeft+nRight).
// view need only enumerate edges outgoing from left nodes to right nodes;
// edges in the opposite direction, if present, are ignored.
//
// For each unmatched left node in turn, a BFS alternating tree is grown from
// it: an unvisited right neighbour either exposes an augmenting path (if
// unmatched) or, if already matched, extends the tree through its partner.
// On finding an unmatched right node, the path back to the root is flipped
// (every tree edge toggles between matched and unmatched), growing the
// matching by one pair. This is the bipartite specialisation of the same
// augmenting-path idea the general-graph blossom variant generalises with
// contraction.
func BipartiteCardinality(ctx context.Context, view graph.View, nLeft, nRight int) (Result, error) {
	n := nLeft + nRight
	match := identityMatch(n)
	pred := make([]int, n)
	visited := make([]bool, n)

	for root := 0; root < nLeft; root++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		if match[root] != root {
			continue
		}
		for i := range pred {
			pred[i] = -1
		}
		for i := range visited {
			visited[i] = false
		}
		visited[root] = true
		queue := []int{root}
		found := -1
		for len(queue) > 0 && found == -1 {
			u := queue[0]
			queue = queue[1:]
			for e := view.EdgeBegin(u); !view.EdgeEnd(u, e); view.EdgeInc(u, &e) {
				v := view.Target(u, e)
				if visited[v] {
					continue
				}
				visited[v] = true
				pred[v] = u
				if match[v] == v {
					found = v
					break
				}
				w := match[v]
				visited[w] = true
				pred[w] = v
				queue = append(queue, w)
			}
		}
		if found == -1 {
			continue
		}
		cur := found
		for {
			p := pred[cur]
			next := match[p]
			match[p] = cur
			match[cur] = p
			if p == root {
				break
			}
			cur = next
		}
	}

	res := Result{Match: match}
	for i := 0; i < n; i++ {
		if match[i] != i {
			res.Size++
		}
	}
	res.Size /= 2
	return res, nil
}
