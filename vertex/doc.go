// Package vertex implements the partition-local vertex record (PLVR): the
// unit exchanged by the coverage pruner and chain compressor. A Record is a
// self-contained, serializable snapshot of one vertex and its edges to and
// from other vertices, independent of any Graph — it is designed to be
// shuffled between workers by a map/reduce-style harness, or driven entirely
// in-process.
//
// A Record carries an opaque payload slice as an extension point: callers
// that need derived-record behavior (for example, fusing k-mer sequence
// fragments across a compressed chain — see the payload package) supply a
// PayloadFuse function to CompressChain rather than subclassing Record.
package vertex
