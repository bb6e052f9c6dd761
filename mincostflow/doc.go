// Package mincostflow implements the min-cost-flow family: successive
// shortest paths driven by node potentials and the Edmonds-Karp reduced-cost
// trick, and cycle-canceling via repeated Bellman-Ford negative-cycle
// detection. SuccessiveShortestPaths operates on a *flow.Network built from
// flow.CostedDirectPipe (and plain Pipe) values; CycleCanceling takes a node
// count and a pipe list and builds its own network. Both return
// (feasible, achieved flow, total cost).
package mincostflow
