// Package graph defines the abstract graph-view protocol that every traversal
// and search algorithm in this module is written against, plus the concrete
// adjacency-list representations and the mutable graph container that feed it.
//
// A view never owns storage. It exposes four operations over a dense integer
// node space:
//
//	EdgeBegin(n) -> first edge handle of n
//	EdgeInc(n, &e) -> advance e to the next edge handle of n
//	EdgeEnd(n, e) -> true once e has run past the last edge handle
//	Target(n, e) -> the node e leads to
//
// Algorithms iterate a node's edges with the begin/inc/end triple rather than
// a slice, which lets FilteredView and JoinedView compose without copying the
// underlying adjacency. Node identity is always a dense, non-negative int;
// callers that want string-keyed vertices build a Container and call Build to
// obtain a view plus the id<->index mapping.
package graph
