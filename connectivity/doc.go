// Package connectivity implements the structural-analysis family:
// bipartiteness testing, articulation points and bridges, strongly connected
// components by Tarjan and by Kosaraju, topological sort (partial and
// total), and Eulerian tour/cycle construction via Hierholzer's algorithm.
package connectivity
