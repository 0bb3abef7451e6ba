package digraph

import "github.com/sabe-project/sabe/internal/edgelist"

// Multiples specifies whether a Graph permits more than one edge between a
// pair of vertices.
type Multiples int

const (
	// MultiplesDisabled rejects an edge between a pair of vertices that
	// already has one (add is a no-op).
	MultiplesDisabled Multiples = iota
	// MultiplesEnabled allows parallel edges, kept as adjacent entries in
	// the sorted adjacency list.
	MultiplesEnabled
)

// Graph is a fixed-capacity directed graph over vertex indices 0..N-1,
// generic over an edge-record type E. Each vertex's out-edges are kept in a
// sorted adjacency list (internal/edgelist.List); in/out degrees are
// computed lazily on first query and then kept up to date incrementally by
// AddEdge and RemoveEdge.
type Graph[E Edge] struct {
	allowMultiples bool
	adjacency      []*edgelist.List[E]

	degreesCached bool
	outDegree     []int
	inDegree      []int
}

// New constructs a Graph with room for vertex indices 0..capacity-1.
func New[E Edge](capacity int, multiples Multiples) *Graph[E] {
	g := &Graph[E]{
		allowMultiples: multiples == MultiplesEnabled,
		adjacency:      make([]*edgelist.List[E], capacity),
	}
	for i := range g.adjacency {
		g.adjacency[i] = edgelist.New[E](g.allowMultiples)
	}
	return g
}

// VertexCapacity returns the number of addressable vertex indices, N.
func (g *Graph[E]) VertexCapacity() int {
	return len(g.adjacency)
}

// EdgeMultiples reports whether the graph permits parallel edges.
func (g *Graph[E]) EdgeMultiples() Multiples {
	if g.allowMultiples {
		return MultiplesEnabled
	}
	return MultiplesDisabled
}

func (g *Graph[E]) inRange(v VertexID) bool {
	return v >= 0 && int(v) < len(g.adjacency)
}

// AddEdge adds edge from the given source vertex. Out-of-range source or
// destination indices are silently ignored, per the engine's range
// tolerance policy for mutation. Returns ErrCapacityExceeded if the
// source's out-edge list is already at its 32767-entry cap.
func (g *Graph[E]) AddEdge(from VertexID, edge E) error {
	to := edge.To()
	if !g.inRange(from) || !g.inRange(to) {
		return nil
	}

	inserted, err := g.adjacency[from].Insert(int(to), edge)
	if err != nil {
		return digraphErrorf("AddEdge", ErrCapacityExceeded)
	}
	if !inserted {
		return nil
	}

	if g.degreesCached {
		g.outDegree[from]++
		if g.inDegree[to] == -1 {
			g.inDegree[to] = 0
		}
		g.inDegree[to]++
	}
	return nil
}

// RemoveEdge removes every edge from the given source vertex to the given
// destination vertex. Out-of-range indices, or a destination with no such
// edge, are silently ignored.
func (g *Graph[E]) RemoveEdge(from, to VertexID) {
	if !g.inRange(from) || !g.inRange(to) {
		return
	}

	removed := g.adjacency[from].RemoveAllKey(int(to))
	if removed == 0 {
		return
	}
	if g.degreesCached {
		g.outDegree[from] -= removed
		g.inDegree[to] -= removed
	}
}

// IsSink reports whether the given vertex has no out-edges. Out-of-range
// vertices are reported as sinks.
func (g *Graph[E]) IsSink(v VertexID) bool {
	if !g.inRange(v) {
		return true
	}
	return g.adjacency[v].Len() == 0
}

// OutDegree returns the number of edges directed out from the given vertex.
// Returns ErrVertexOutOfRange if the vertex is out of range.
func (g *Graph[E]) OutDegree(from VertexID) (int, error) {
	if !g.inRange(from) {
		return 0, digraphErrorf("OutDegree", ErrVertexOutOfRange)
	}
	g.cacheDegrees()
	return g.outDegree[from], nil
}

// InDegree returns the number of edges directed in to the given vertex.
// Returns ErrVertexOutOfRange if the vertex is out of range.
func (g *Graph[E]) InDegree(to VertexID) (int, error) {
	if !g.inRange(to) {
		return 0, digraphErrorf("InDegree", ErrVertexOutOfRange)
	}
	g.cacheDegrees()
	return g.inDegree[to], nil
}

// cacheDegrees performs a full sweep to populate outDegree/inDegree the
// first time either is queried. Subsequent mutation keeps the caches
// consistent incrementally in AddEdge/RemoveEdge.
func (g *Graph[E]) cacheDegrees() {
	if g.degreesCached {
		return
	}

	n := len(g.adjacency)
	g.inDegree = make([]int, n)
	g.outDegree = make([]int, n)

	for v := 0; v < n; v++ {
		out := g.adjacency[v].Len()
		if out == 0 {
			continue
		}
		g.outDegree[v] = out
		if g.inDegree[v] == -1 {
			g.inDegree[v] = 0
		}
		for _, e := range g.adjacency[v].Values() {
			to := int(e.To())
			if g.inDegree[to] == -1 {
				g.inDegree[to] = 0
			}
			g.inDegree[to]++
			if g.outDegree[to] == -1 {
				g.outDegree[to] = 0
			}
		}
	}
	g.degreesCached = true
}

// AdjacencyIterator iterates the edges directed out from a single vertex,
// in ascending order of destination.
type AdjacencyIterator[E Edge] struct {
	it *edgelist.Iterator[E]
}

// CreateAdjacencyIterator creates an iterator over the edges out from the
// given vertex. Returns ErrVertexOutOfRange if the vertex is out of range.
func (g *Graph[E]) CreateAdjacencyIterator(from VertexID) (*AdjacencyIterator[E], error) {
	if !g.inRange(from) {
		return nil, digraphErrorf("CreateAdjacencyIterator", ErrVertexOutOfRange)
	}
	return &AdjacencyIterator[E]{it: g.adjacency[from].NewIterator()}, nil
}

// Begin positions the iterator at the first edge and returns it.
func (a *AdjacencyIterator[E]) Begin() (E, bool) {
	return a.it.Begin()
}

// Next advances the iterator and returns the new current edge.
func (a *AdjacencyIterator[E]) Next() (E, bool) {
	return a.it.Next()
}

// Done reports whether the iteration is complete.
func (a *AdjacencyIterator[E]) Done() bool {
	return a.it.Done()
}

// Close deregisters the iterator from the vertex's adjacency list.
func (a *AdjacencyIterator[E]) Close() {
	a.it.Close()
}

// AdjacencyGroupIterator iterates the edges out from a single vertex,
// batching every consecutive run of edges that share a destination.
type AdjacencyGroupIterator[E Edge] struct {
	it *edgelist.GroupIterator[E]
}

// CreateAdjacencyGroupIterator creates a group iterator over the edges out
// from the given vertex. Returns ErrVertexOutOfRange if out of range.
func (g *Graph[E]) CreateAdjacencyGroupIterator(from VertexID) (*AdjacencyGroupIterator[E], error) {
	if !g.inRange(from) {
		return nil, digraphErrorf("CreateAdjacencyGroupIterator", ErrVertexOutOfRange)
	}
	return &AdjacencyGroupIterator[E]{it: g.adjacency[from].NewGroupIterator()}, nil
}

// Begin returns the first group of edges sharing a destination.
func (a *AdjacencyGroupIterator[E]) Begin() []E {
	return a.it.Begin()
}

// Next returns the next group of edges sharing a destination.
func (a *AdjacencyGroupIterator[E]) Next() []E {
	return a.it.Next()
}

// Done reports whether the group iteration is complete.
func (a *AdjacencyGroupIterator[E]) Done() bool {
	return a.it.Done()
}

// Close deregisters the iterator from the vertex's adjacency list.
func (a *AdjacencyGroupIterator[E]) Close() {
	a.it.Close()
}
