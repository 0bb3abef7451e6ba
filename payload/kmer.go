package payload

// KmerFragment is a short nucleotide-string payload attached to a
// vertex.Record. It is stored as opaque bytes by the record; this type
// just gives those bytes a domain-meaningful constructor and accessor.
type KmerFragment string

// Bytes returns the fragment's opaque byte representation, suitable for
// vertex.Record.SetPayload.
func (k KmerFragment) Bytes() []byte {
	return []byte(k)
}

// FromBytes reconstructs a KmerFragment from a record's payload bytes.
func FromBytes(b []byte) KmerFragment {
	return KmerFragment(b)
}

// Fuse concatenates two k-mer suffix fragments in order. It has the
// signature vertex.Record.CompressChain and compress.Round expect for their
// fuse parameter: when a chain v0 -> v1 -> v2 compresses, v0's fragment is
// followed by v1's, reconstructing the longer run of sequence the chain
// represents.
func Fuse(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
