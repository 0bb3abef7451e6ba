// Package euler implements non-destructive Hierholzer-style Euler-tour
// extraction over a digraph.Graph: each vertex's out-edges are walked at
// most once via a capacity-sized table of adjacency iterators, and an
// explicit stack — not recursion — splices sub-cycles back into the path
// currently being traced. When a graph satisfies the Eulerian precondition
// (every vertex's in-degree equals its out-degree) every emitted path is a
// genuine closed tour; otherwise the extractor still emits best-effort
// paths without diagnostic.
package euler
