// Package algo is a generic graph-algorithms library: a cohesive collection
// of traversal, shortest-path, connectivity, spanning-tree, network-flow and
// matching procedures that operate over user-supplied graph representations
// through a small set of abstract operations.
//
// The module's value is algorithmic correctness, composability and reuse
// across representations, not any particular storage layout. Every algorithm
// is written against the graph.View protocol (and, where weights matter,
// graph.WeightedView); callers supply either graph.AdjacencyList, a View
// built from graph.Container, or their own type satisfying the protocol.
//
// Subpackages, dependency order:
//
//	graph/        — graph-view protocol, index maps, filtered/joined view
//	                adapters, and the mutable adjacency-list Container
//	prop/         — sparse per-node/per-edge property store
//	pqueue/       — scan-for-min and indexed-binary-heap priority queues
//	search/       — tree-search record, search-adapter hooks, weight-update
//	                algebra, and the BFS/DFS/priority-search engines
//	shortestpath/ — Dijkstra, Bellman-Ford, Floyd-Warshall, DAG relaxation, A*
//	connectivity/ — bipartiteness, articulation points & bridges, SCC
//	                (Tarjan/Kosaraju), topological sort, Eulerian tours
//	mst/          — Prim (dense/sparse) and Kruskal minimum spanning trees
//	flow/         — residual networks, augmenting-path and preflow-push
//	                maximum flow, Dinic
//	mincostflow/  — successive shortest paths and cycle-canceling min-cost
//	                flow
//	matching/     — bipartite and general (blossom) cardinality/weighted
//	                matching, minimum edge cover
//
// None of these packages reach outside the process: no network, storage,
// serialization, or file format is part of this module's surface. Every
// traversal, shortest-path, connectivity, spanning-tree, flow and
// cardinality-matching algorithm accepts a context.Context; the dense-matrix
// matching procedures (HungarianMinCost, GeneralMaxWeight,
// GeneralMinCostPerfect, MinWeightEdgeCover) do not. Every algorithm returns
// either the requested structure or a feasibility flag; none panics on an
// algorithmic outcome.
package algo
