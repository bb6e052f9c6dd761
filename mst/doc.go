// Package mst implements the minimum-spanning-tree family: Prim's
// algorithm over dense and sparse priority queues, and Kruskal's algorithm
// with a weighted union-find that intentionally omits path compression
// (the graphs this module targets are bounded by edge count, not asymptotic
// union-find scale).
package mst
