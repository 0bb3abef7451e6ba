// Sabe assembles short reads into longer contiguous sequences by building
// a de Bruijn graph over their k-mers, collapsing runs of non-branching
// vertices, pruning arrivals with too little read-coverage support to
// trust, and reading the reconstructed sequences back off as Euler tours
// of what remains.
//
// The engine is organized as a set of small, independently testable
// packages:
//
//	vertex/     — the partition-local vertex record (PLVR) and its wire format
//	digraph/    — a capacity-bounded directed multigraph with adjacency iteration
//	compress/   — randomized pairwise chain compression to fixpoint
//	prune/      — coverage-based rejection of under-supported arrivals
//	euler/      — non-destructive Euler-tour extraction via Hierholzer's algorithm
//	components/ — weakly-connected component discovery
//	stream/     — tag-discriminated framing for moving records between processes
//	external/   — the read-generation/splitting/parsing interfaces a harness supplies
//	payload/    — k-mer fragment bytes and the payload-fusing function compress uses
//	export/     — Graphviz DOT rendering of a graph or a set of tours
//	config/     — the six tunables that govern one run, loadable via Viper
//	assemble/   — the façade that drives build -> prune -> compress -> tour
//	cmd/        — the sabe CLI built on those packages
package main
