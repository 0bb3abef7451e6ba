// Package digraph implements the fixed-capacity directed-graph container
// described by the engine's core: addressable vertex indices 0..N-1, a
// sorted per-vertex adjacency list, lazily cached in/out degrees, and
// range-checked mutation that tolerates out-of-range indices on add/remove
// but rejects them on iterator creation and degree queries.
//
// Graph is parameterized by an edge-record type so the same container
// serves both plain edges (BasicEdge) and weighted edges (WeightedEdge)
// without a base-class hierarchy.
package digraph
