// Package stream implements the length-self-describing, tag-discriminated
// record framing used to move vertex and edge records between processes:
// tag 1 begins a vertex.Record in its wire-format layout, tag 2 begins a
// fixed 8-byte vertex.WireEdge. Readers distinguish records solely by the
// leading tag byte; any other tag is a FramingError. Vertex records tolerate
// truncation the same way vertex.FromBytes does; edge records do not, since
// their size is fixed.
package stream
