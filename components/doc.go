// Package components computes the weakly-connected components of a
// digraph.Graph: a read-only diagnostic partition, treating every edge as
// undirected reachability, that the tour extractor's per-component framing
// relies on but does not itself expose. It walks the graph with an
// explicit stack rather than recursion, and does not mutate it.
package components
