package graph

import "sync"

// Container is the generic mutable graph container: a string-keyed
// adjacency list supporting incremental add/remove of vertices and edges. It
// is the reference external collaborator for the algorithm packages: build a
// Container, populate it, then call Build to obtain a View over a dense
// Node space plus the id<->index mapping used to translate algorithm output
// back to caller-meaningful ids.
//
// Container is concurrency-safe for overlapping mutation calls, but the View
// returned by Build is a point-in-time snapshot; mutating the Container after
// Build does not affect a View already handed to an algorithm, matching the
// immutable-for-the-duration-of-a-call assumption every algorithm in this
// module makes.
type Container struct {
	mu   sync.RWMutex
	opts containerOptions

	nextEdgeID uint64
	vertices   []string          // dense order, index == position
	index      map[string]int    // vertex id -> position in vertices
	edges      map[uint64]edgeRecord
	adj        map[string][]uint64 // vertex id -> outgoing edge ids, in insertion order
}

type edgeRecord struct {
	id       uint64
	from, to string
	weight   float64
}

// NewContainer constructs an empty Container.
func NewContainer(opts ...ContainerOption) *Container {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Container{
		opts:  o,
		index: make(map[string]int),
		edges: make(map[uint64]edgeRecord),
		adj:   make(map[string][]uint64),
	}
}

// AddVertex inserts a new vertex id. Returns ErrVertexExists if already
// present.
func (c *Container) AddVertex(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[id]; ok {
		return ErrVertexExists
	}
	c.index[id] = len(c.vertices)
	c.vertices = append(c.vertices, id)
	c.adj[id] = nil
	return nil
}

// HasVertex reports whether id is present.
func (c *Container) HasVertex(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.index[id]
	return ok
}

// AddEdge inserts an edge from -> to with the given weight, auto-adding
// either endpoint it if is missing, and returns the new edge id. When the
// container was built without WithDirected, an identical reverse edge record
// is not created automatically: undirected semantics are the responsibility
// of the View built from this container (Build mirrors edges both ways for
// undirected containers).
func (c *Container) AddEdge(from, to string, weight float64) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if from == to && !c.opts.allowLoops {
		return 0, ErrSelfLoop
	}
	if _, ok := c.index[from]; !ok {
		c.index[from] = len(c.vertices)
		c.vertices = append(c.vertices, from)
	}
	if _, ok := c.index[to]; !ok {
		c.index[to] = len(c.vertices)
		c.vertices = append(c.vertices, to)
	}
	if !c.opts.allowMulti {
		for _, eid := range c.adj[from] {
			if c.edges[eid].to == to {
				// Replace semantics: silently drop the previous edge before
				// inserting the new one. Any external property store keyed on
				// the dropped edge's id is left stale; the post-remove hook is
				// the only notification.
				c.removeEdgeLocked(eid)
				break
			}
		}
	}
	id := c.nextEdgeID
	c.nextEdgeID++
	c.edges[id] = edgeRecord{id: id, from: from, to: to, weight: weight}
	c.adj[from] = append(c.adj[from], id)
	return id, nil
}

// RemoveVertex deletes a vertex and every edge touching it, invoking the
// post-remove hook (if configured) for the vertex and each removed edge.
func (c *Container) RemoveVertex(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrVertexNotFound
	}
	for _, eid := range append([]uint64(nil), c.adj[id]...) {
		c.removeEdgeLocked(eid)
	}
	for other, eids := range c.adj {
		if other == id {
			continue
		}
		// Compact in place rather than through removeEdgeLocked, which would
		// splice the same slice this loop is ranging over.
		kept := eids[:0]
		for _, eid := range eids {
			if c.edges[eid].to == id {
				delete(c.edges, eid)
				if c.opts.postRemove != nil {
					c.opts.postRemove("edge", idToString(eid))
				}
				continue
			}
			kept = append(kept, eid)
		}
		c.adj[other] = kept
	}
	delete(c.adj, id)
	delete(c.index, id)
	// swap-with-last to keep vertices dense, per the container's documented
	// removal strategy: any external property store indexed by the moved
	// vertex's old position is invalidated.
	last := len(c.vertices) - 1
	moved := c.vertices[last]
	c.vertices[pos] = moved
	c.vertices = c.vertices[:last]
	if moved != id {
		c.index[moved] = pos
	}
	if c.opts.postRemove != nil {
		c.opts.postRemove("vertex", id)
	}
	return nil
}

// RemoveEdge deletes the edge with the given id.
func (c *Container) RemoveEdge(id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.edges[id]; !ok {
		return ErrEdgeNotFound
	}
	c.removeEdgeLocked(id)
	return nil
}

func (c *Container) removeEdgeLocked(id uint64) {
	rec, ok := c.edges[id]
	if !ok {
		return
	}
	delete(c.edges, id)
	eids := c.adj[rec.from]
	for i, e := range eids {
		if e == id {
			c.adj[rec.from] = append(eids[:i], eids[i+1:]...)
			break
		}
	}
	if c.opts.postRemove != nil {
		c.opts.postRemove("edge", idToString(id))
	}
}

func idToString(id uint64) string {
	// Small, dependency-free uint64->string without importing strconv at
	// every call site; kept local since it is only used for the post-remove
	// callback's diagnostic id string.
	if id == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = byte('0' + id%10)
		id /= 10
	}
	return string(buf[i:])
}

// Build snapshots the Container into a *graph.AdjacencyList (a View and
// WeightedView) over a dense 0..n-1 Node space, plus the id<->index mapping
// needed to translate algorithm results back to caller ids.
func (c *Container) Build() (view *AdjacencyList, idOf map[string]Node, nodeOf []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.vertices)
	idOf = make(map[string]Node, n)
	nodeOf = make([]string, n)
	for i, id := range c.vertices {
		idOf[id] = i
		nodeOf[i] = id
	}
	view = NewAdjacencyList(n)
	for from, eids := range c.adj {
		fn := idOf[from]
		for _, eid := range eids {
			rec := c.edges[eid]
			tn := idOf[rec.to]
			view.AddEdge(fn, tn, rec.weight)
			if !c.opts.directed && rec.from != rec.to {
				view.AddEdge(tn, fn, rec.weight)
			}
		}
	}
	return view, idOf, nodeOf
}
