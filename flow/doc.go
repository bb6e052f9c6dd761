// Package flow implements the residual-network abstraction and the
// max-flow suite: augmenting-path algorithms (Edmonds-Karp shortest
// path, widest-path), three preflow-push orderings (relabel-to-front, FIFO,
// highest-label), and Dinic's blocking-flow algorithm.
//
// A Network is built from a list of Pipe values plus a node count; Pipe
// comes in three flavours (Direct, Bidirect, CostedDirect — the costed
// variant is consumed by package mincostflow, not by this package's own
// max-flow procedures). Every max-flow procedure here shares the same
// correctness invariant: flow conservation at every non-terminal node, no
// source-sink path left in the residual graph on termination, and a
// returned value equal to the total flow leaving the source.
package flow
