package export

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/sabe-project/sabe/digraph"
	"github.com/sabe-project/sabe/euler"
)

// weighted is satisfied by digraph.WeightedEdge; edges that implement it
// get their weight rendered as an edge label.
type weighted interface {
	Weight() float64
}

// Dump renders g as Graphviz DOT source: one node per addressable vertex
// index, one edge per adjacency entry.
func Dump[E digraph.Edge](g *digraph.Graph[E]) (string, error) {
	gv := dot.NewGraph(dot.Directed)

	n := g.VertexCapacity()
	nodes := make([]dot.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = gv.Node(strconv.Itoa(i))
	}

	for i := 0; i < n; i++ {
		from := digraph.VertexID(i)
		it, err := g.CreateAdjacencyIterator(from)
		if err != nil {
			return "", err
		}
		for e, ok := it.Begin(); ok; e, ok = it.Next() {
			edge := gv.Edge(nodes[from], nodes[e.To()])
			if w, isWeighted := any(e).(weighted); isWeighted {
				edge.Label(strconv.FormatFloat(w.Weight(), 'g', -1, 64))
			}
		}
		it.Close()
	}

	return gv.String(), nil
}

// DumpTours renders a set of euler.Path tours as Graphviz DOT source, one
// node per vertex that appears in any tour and one edge per consecutive
// pair within a tour.
func DumpTours(paths []euler.Path) string {
	gv := dot.NewGraph(dot.Directed)
	nodes := make(map[digraph.VertexID]dot.Node)

	nodeFor := func(v digraph.VertexID) dot.Node {
		if n, ok := nodes[v]; ok {
			return n
		}
		n := gv.Node(strconv.Itoa(int(v)))
		nodes[v] = n
		return n
	}

	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			gv.Edge(nodeFor(path[i]), nodeFor(path[i+1]))
		}
	}

	return gv.String()
}
