package vertex

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// MarshalText renders the record as a human-readable, semicolon-delimited
// line, kept alongside the mandatory binary wire format as a debugging aid.
// The fields are: id; format tag ("t" or "b"); comma-separated out-edges;
// comma-separated in-edges (present, possibly empty, only when format is
// EdgesToFrom); hex-encoded payload.
//
// Calling MarshalText after CompressChain and then UnmarshalText with
// EdgesToFrom does not reconstruct a consistent graph: a compressed
// record's former successor still believes it has an edge from the
// now-absorbed vertex.
func (r *Record) MarshalText(format EdgeFormat) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%d;", r.id)
	if format == EdgesToFrom {
		b.WriteString("b;")
	} else {
		b.WriteString("t;")
	}
	writeVertexList(&b, r.edgesTo.Values())
	b.WriteByte(';')
	if format == EdgesToFrom {
		writeVertexList(&b, r.edgesFrom.Values())
	}
	b.WriteByte(';')
	b.WriteString(hex.EncodeToString(r.payload))
	return []byte(b.String())
}

func writeVertexList(b *strings.Builder, vs []VertexID) {
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%d", v)
	}
}

// UnmarshalText parses the format produced by MarshalText. It returns
// ErrFraming if the line has fewer than the five required fields or any
// vertex id fails to parse as an integer.
func UnmarshalText(s string, allowMultiples bool) (*Record, error) {
	tokens := strings.SplitN(s, ";", 5)
	if len(tokens) < 5 {
		return nil, vertexErrorf("UnmarshalText", ErrFraming)
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, vertexErrorf("UnmarshalText", ErrFraming)
	}
	r := New(VertexID(id), allowMultiples)

	if tokens[1] != "t" && tokens[1] != "b" {
		return nil, vertexErrorf("UnmarshalText", ErrFraming)
	}

	if tokens[2] != "" {
		for _, tok := range strings.Split(tokens[2], ",") {
			to, err := strconv.Atoi(tok)
			if err != nil {
				return nil, vertexErrorf("UnmarshalText", ErrFraming)
			}
			if err := r.AddEdgeTo(VertexID(to)); err != nil {
				return nil, err
			}
		}
	}

	if tokens[1] == "b" && tokens[3] != "" {
		for _, tok := range strings.Split(tokens[3], ",") {
			from, err := strconv.Atoi(tok)
			if err != nil {
				return nil, vertexErrorf("UnmarshalText", ErrFraming)
			}
			if err := r.AddEdgeFrom(VertexID(from)); err != nil {
				return nil, err
			}
		}
	}

	payload, err := hex.DecodeString(tokens[4])
	if err != nil {
		return nil, vertexErrorf("UnmarshalText", ErrFraming)
	}
	r.payload = payload

	return r, nil
}
