package graph

import "errors"

// ErrVertexNotFound is returned when an operation references a vertex id
// that is not present in the container.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// ErrVertexExists is returned by AddVertex when the id is already present.
var ErrVertexExists = errors.New("graph: vertex already exists")

// ErrEdgeNotFound is returned when an operation references an edge id that
// is not present in the container.
var ErrEdgeNotFound = errors.New("graph: edge not found")

// ErrSelfLoop is returned by AddEdge when from == to and loops are not
// permitted.
var ErrSelfLoop = errors.New("graph: self-loop not permitted")

// ContainerOption configures a Container at construction time.
type ContainerOption func(*containerOptions)

type containerOptions struct {
	directed   bool
	allowLoops bool
	allowMulti bool
	postRemove func(kind string, id string)
}

// WithDirected marks every edge added to the container as directed.
func WithDirected() ContainerOption {
	return func(o *containerOptions) { o.directed = true }
}

// WithLoops permits self-loop edges (from == to).
func WithLoops() ContainerOption {
	return func(o *containerOptions) { o.allowLoops = true }
}

// WithMultiEdges permits more than one edge between the same ordered pair.
func WithMultiEdges() ContainerOption {
	return func(o *containerOptions) { o.allowMulti = true }
}

// WithPostRemoveHook registers a callback invoked with ("vertex", id) or
// ("edge", id) immediately after RemoveVertex/RemoveEdge has relocated the
// container's dense indices, so callers holding an external property store
// keyed on the old index can invalidate it.
func WithPostRemoveHook(fn func(kind string, id string)) ContainerOption {
	return func(o *containerOptions) { o.postRemove = fn }
}
