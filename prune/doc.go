// Package prune implements coverage-based error pruning: given an
// expected coverage c, a vertex.Record's out- and in-edge groups that fall
// below ⌈c/2⌉ supporting edges are discarded; a record with no surviving
// group on either side is rejected outright as having no corroborating
// evidence. Prune is a pure function of its arguments, suitable for driving
// from an in-process loop or a map/reduce-style harness's per-key reducer.
package prune
