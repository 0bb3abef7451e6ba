// Package compress implements randomized, key-gated chain compression over
// vertex.Record values: each non-branch record draws a pairing key from
// its own id or its unique successor's id, a harness groups records by that
// key, and Round performs the pairwise merges that agree. RunToFixpoint
// drives Round in-process until a caller-chosen number of consecutive
// silent rounds have occurred.
//
// Round and RunToFixpoint are pure functions of their arguments — no
// package-level mutable state — so a map/reduce-style harness can shuffle
// records between workers and drive the same functions across a cluster. A
// RunContext carries the run's iteration and silent-round counters instead
// of process-global statics.
package compress
