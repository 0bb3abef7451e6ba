package vertex

import "encoding/binary"

// TypeTagVertex identifies a Record in a mixed byte-record stream.
// TypeTagEdge identifies a fixed-size WireEdge.
const (
	TypeTagVertex byte = 1
	TypeTagEdge   byte = 2
)

// cursor reads big-endian fields from a byte slice, refusing to advance
// past the end rather than panicking or sign-extending. Unlike the getShort
// this replaces, every field is read as unsigned bytes and assembled with
// encoding/binary, so values with a high bit set round-trip correctly.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) int32() (int32, bool) {
	if c.pos+4 > len(c.data) {
		return 0, false
	}
	v := int32(binary.BigEndian.Uint32(c.data[c.pos:]))
	c.pos += 4
	return v, true
}

func (c *cursor) int16() (int16, bool) {
	if c.pos+2 > len(c.data) {
		return 0, false
	}
	v := int16(binary.BigEndian.Uint16(c.data[c.pos:]))
	c.pos += 2
	return v, true
}

func (c *cursor) byte() (byte, bool) {
	if c.pos+1 > len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

func (c *cursor) bytes(n int) ([]byte, bool) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, false
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

func putInt32(buf []byte, v int32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

func putInt16(buf []byte, v int16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	return append(buf, tmp[:]...)
}

// ToBytes serializes the record in its wire format. format controls
// whether edgesFrom is written; EdgesTo writes an nFrom of 0 and omits the
// edgesFrom array entirely.
func (r *Record) ToBytes(format EdgeFormat) []byte {
	to := r.edgesTo.Values()
	var from []VertexID
	if format == EdgesToFrom {
		from = r.edgesFrom.Values()
	}

	size := 1 + 1 + 4 + 2 + 4*len(to) + 2 + 4*len(from) + 2 + len(r.payload)
	buf := make([]byte, 0, size)
	buf = append(buf, TypeTagVertex, r.flags)
	buf = putInt32(buf, int32(r.id))
	buf = putInt16(buf, int16(len(to)))
	for _, v := range to {
		buf = putInt32(buf, int32(v))
	}
	buf = putInt16(buf, int16(len(from)))
	for _, v := range from {
		buf = putInt32(buf, int32(v))
	}
	buf = putInt16(buf, int16(len(r.payload)))
	buf = append(buf, r.payload...)
	return buf
}

// FromBytes reconstructs a Record from its wire-format bytes. data
// must not include the leading type-tag byte; callers dispatch on that tag
// themselves (see the stream package). If data is truncated, FromBytes
// reconstructs as much of the record as is present and returns without
// error, per the engine's tolerance policy for PLVR input; any field past
// the truncation point is simply absent (an empty edge list or payload).
func FromBytes(data []byte, allowMultiples bool) *Record {
	c := &cursor{data: data}

	r := New(NoVertex, allowMultiples)

	flags, ok := c.byte()
	if !ok {
		return r
	}
	r.flags = flags

	id, ok := c.int32()
	if !ok {
		return r
	}
	r.id = VertexID(id)

	nTo, ok := c.int16()
	if !ok {
		return r
	}
	for i := int16(0); i < nTo; i++ {
		to, ok := c.int32()
		if !ok {
			return r
		}
		_, _ = r.edgesTo.Insert(int(to), VertexID(to))
	}

	nFrom, ok := c.int16()
	if !ok {
		return r
	}
	for i := int16(0); i < nFrom; i++ {
		from, ok := c.int32()
		if !ok {
			return r
		}
		_, _ = r.edgesFrom.Insert(int(from), VertexID(from))
	}

	payloadLen, ok := c.int16()
	if !ok {
		return r
	}
	payload, ok := c.bytes(int(payloadLen))
	if !ok {
		return r
	}
	r.payload = append([]byte(nil), payload...)

	return r
}

// WireEdge is the fixed-size (9-byte, including its leading type tag) edge
// record recognized when mixed into a byte-record input stream. Unlike
// vertex records, edge records do not tolerate truncation:
// they are fixed-size by construction, so a short read is a framing error.
type WireEdge struct {
	From VertexID
	To   VertexID
}

// ToBytes serializes the edge record.
func (e WireEdge) ToBytes() []byte {
	buf := make([]byte, 0, 9)
	buf = append(buf, TypeTagEdge)
	buf = putInt32(buf, int32(e.From))
	buf = putInt32(buf, int32(e.To))
	return buf
}

// EdgeFromBytes reconstructs a WireEdge from its 8-byte body (excluding
// the leading type tag). ok is false if data is short.
func EdgeFromBytes(data []byte) (WireEdge, bool) {
	c := &cursor{data: data}
	from, ok := c.int32()
	if !ok {
		return WireEdge{}, false
	}
	to, ok := c.int32()
	if !ok {
		return WireEdge{}, false
	}
	return WireEdge{From: VertexID(from), To: VertexID(to)}, true
}
