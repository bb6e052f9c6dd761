// Package search implements the traversal core shared by every algorithm in
// this module: the tree-search record, the four-hook search adapter, the
// weight-update algebra, and the BFS, DFS and generic priority-search
// engines.
//
// Every engine returns a *TreeSearch[L] (the per-node state/predecessor/label
// table) together with a Discriminator identifying which adapter hook, if
// any, aborted the run early. A context.Context is threaded through every
// engine; cancellation is checked once per node dequeue and leaves the
// tree-search record in a valid but incomplete state.
package search
