package search

import "github.com/gographlib/algo/graph"

// Discriminator identifies which hook, if any, terminated a traversal early.
type Discriminator int

const (
	Completed Discriminator = iota
	AbortedNodePreprocess
	AbortedEdgeProcess
	AbortedNodePostprocess
)

// Adapter is the four-hook search-adapter protocol that drives every
// traversal engine. Each hook returns false to abort the whole traversal;
// the engine reports which hook did so via its returned Discriminator.
type Adapter interface {
	NodePreprocess(n int) bool
	EdgeFilter(n int, e graph.EdgeRef) bool
	EdgeProcess(n int, e graph.EdgeRef) bool
	NodePostprocess(n int) bool
}

// Hooks is a composable Adapter built from optional function fields; a nil
// field behaves as an always-true hook, matching FullSearch's defaults.
type Hooks struct {
	NodePre  func(n int) bool
	Filter   func(n int, e graph.EdgeRef) bool
	Process  func(n int, e graph.EdgeRef) bool
	NodePost func(n int) bool
}

func (h *Hooks) NodePreprocess(n int) bool {
	if h.NodePre == nil {
		return true
	}
	return h.NodePre(n)
}

func (h *Hooks) EdgeFilter(n int, e graph.EdgeRef) bool {
	if h.Filter == nil {
		return true
	}
	return h.Filter(n, e)
}

func (h *Hooks) EdgeProcess(n int, e graph.EdgeRef) bool {
	if h.Process == nil {
		return true
	}
	return h.Process(n, e)
}

func (h *Hooks) NodePostprocess(n int) bool {
	if h.NodePost == nil {
		return true
	}
	return h.NodePost(n)
}

// FullSearch returns an Adapter that accepts every node and edge, running a
// traversal to completion.
func FullSearch() *Hooks { return &Hooks{} }

// SearchTarget returns an Adapter that behaves like FullSearch but reports
// AbortedNodePostprocess the moment target is closed, letting a caller stop
// a traversal once a single destination has been fully processed.
func SearchTarget(target int) *Hooks {
	return &Hooks{
		NodePost: func(n int) bool { return n != target },
	}
}
