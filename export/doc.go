// Package export renders a digraph.Graph, or a set of euler.Path tours,
// as Graphviz DOT source for visual inspection.
package export
