package external

import (
	"context"
	"io"

	"github.com/sabe-project/sabe/vertex"
)

// ReadGenerator produces n synthetic reads of the given length, e.g. for
// benchmarking or testing an assembly pipeline without real sequence data.
type ReadGenerator interface {
	Generate(ctx context.Context, n, length int) ([]string, error)
}

// ReadSplitter breaks a single sequence into overlapping or adjacent
// fixed-length fragments suitable for de Bruijn graph construction.
type ReadSplitter interface {
	Split(ctx context.Context, sequence string, fragmentLength int) ([]string, error)
}

// InputParser parses an input stream into vertex records, independent of
// the tag-discriminated wire framing the stream package implements (an
// InputParser might, for example, read raw FASTA and build records from
// k-mers rather than decode an already-framed byte stream).
type InputParser interface {
	Parse(ctx context.Context, r io.Reader) ([]vertex.Record, error)
}
