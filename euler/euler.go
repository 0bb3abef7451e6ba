package euler

import "github.com/sabe-project/sabe/digraph"

// Path is one tour (or, on a non-Eulerian graph, a best-effort walk)
// emitted by Extract: an ordered sequence of vertex indices in tour order.
type Path []digraph.VertexID

// Extract computes the Euler tours of g without mutating g. When g
// satisfies the Eulerian precondition (every vertex's in-degree equals its
// out-degree) it emits one closed tour per weakly-connected component that
// has an edge, and every edge appears in exactly one tour. Otherwise
// Extract emits best-effort walks without diagnostic: a component may yield
// several walks, and the edges of a trace that ends at a vertex other than
// where it started are not recorded in any walk (the single edge 0->1
// yields the one-vertex walk [0]). Callers that need to validate closure or
// edge coverage must check degrees themselves.
func Extract[E digraph.Edge](g *digraph.Graph[E]) ([]Path, error) {
	n := g.VertexCapacity()
	its := make([]*digraph.AdjacencyIterator[E], n)
	defer func() {
		for _, it := range its {
			if it != nil {
				it.Close()
			}
		}
	}()

	var output []Path
	for i := 0; i < n; i++ {
		v := digraph.VertexID(i)

		out, err := g.OutDegree(v)
		if err != nil {
			return nil, err
		}
		if out <= 0 {
			continue
		}
		if its[v] != nil && its[v].Done() {
			continue
		}

		path := []digraph.VertexID{v}
		var stack []digraph.VertexID

		stuck, err := tracePath(g, its, v, &stack)
		if err != nil {
			return nil, err
		}
		for stuck == v && len(stack) > 0 {
			v = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			path = prepend(path, v)

			stuck, err = tracePath(g, its, v, &stack)
			if err != nil {
				return nil, err
			}
		}
		output = append(output, Path(path))
	}
	return output, nil
}

// tracePath walks forward from v along its not-yet-visited out-edges,
// pushing each vertex left behind onto stack, until v's adjacency iterator
// is exhausted. It returns the vertex where the walk got stuck: if that
// vertex is v itself, the walk just traced a cycle that can be spliced back
// into the caller's path; the per-vertex iterator table guarantees every
// edge is walked at most once across every call.
func tracePath[E digraph.Edge](g *digraph.Graph[E], its []*digraph.AdjacencyIterator[E], v digraph.VertexID, stack *[]digraph.VertexID) (digraph.VertexID, error) {
	for {
		it := its[v]
		var edge E
		var ok bool
		if it == nil {
			created, err := g.CreateAdjacencyIterator(v)
			if err != nil {
				return digraph.NoVertex, err
			}
			its[v] = created
			edge, ok = created.Begin()
		} else {
			edge, ok = it.Next()
		}
		if !ok {
			break
		}
		*stack = append(*stack, v)
		v = edge.To()
	}
	return v, nil
}

func prepend(path []digraph.VertexID, v digraph.VertexID) []digraph.VertexID {
	out := make([]digraph.VertexID, len(path)+1)
	out[0] = v
	copy(out[1:], path)
	return out
}
