// Package assemble provides Assembler, a façade that drives the full
// pipeline — coverage pruning, chain compression to fixpoint, and Euler-tour
// extraction — over a set of partition-local vertex records, logging phase
// transitions with zerolog and exposing counters through a private
// Prometheus registry. The pipeline stages themselves (prune, compress,
// euler) stay free of logging and metrics; this package is where that
// ambient stack lives.
package assemble
