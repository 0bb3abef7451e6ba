package components

import "github.com/sabe-project/sabe/digraph"

// Component is one weakly-connected component: an unordered set of vertex
// indices, in the order they were first visited.
type Component []digraph.VertexID

// WeaklyConnected partitions every vertex index 0..N-1 into its
// weakly-connected component, treating each edge as an undirected link
// regardless of direction. Isolated vertices (no in- or out-edges) form
// their own singleton component.
func WeaklyConnected[E digraph.Edge](g *digraph.Graph[E]) ([]Component, error) {
	n := g.VertexCapacity()
	undirected, err := buildUndirectedAdjacency(g)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	var comps []Component
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		comps = append(comps, walkFrom(digraph.VertexID(s), undirected, visited))
	}
	return comps, nil
}

func buildUndirectedAdjacency[E digraph.Edge](g *digraph.Graph[E]) ([][]digraph.VertexID, error) {
	n := g.VertexCapacity()
	undirected := make([][]digraph.VertexID, n)
	for v := 0; v < n; v++ {
		from := digraph.VertexID(v)
		it, err := g.CreateAdjacencyIterator(from)
		if err != nil {
			return nil, err
		}
		for e, ok := it.Begin(); ok; e, ok = it.Next() {
			to := e.To()
			undirected[from] = append(undirected[from], to)
			undirected[to] = append(undirected[to], from)
		}
		it.Close()
	}
	return undirected, nil
}

// walkFrom explores one component with an explicit stack, not recursion.
func walkFrom(start digraph.VertexID, undirected [][]digraph.VertexID, visited []bool) Component {
	var comp Component
	stack := []digraph.VertexID{start}
	visited[start] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, v)
		for _, w := range undirected[v] {
			if !visited[w] {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}
	return comp
}
