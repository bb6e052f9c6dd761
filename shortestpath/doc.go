// Package shortestpath implements the shortest-path family: Dijkstra
// over dense and sparse queues, Bellman-Ford with a negative-cycle
// certificate, Floyd-Warshall all-pairs distances, DAG relaxation, and A*.
//
// Dijkstra and A* assume non-negative edge weights; per this module's error
// taxonomy that precondition is not checked, and violating it silently
// yields wrong (not erroneous) results — route negative-weight graphs
// through BellmanFord or, when the graph is a DAG, DAGShortestPath.
package shortestpath
