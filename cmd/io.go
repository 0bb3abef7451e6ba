package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sabe-project/sabe/stream"
	"github.com/sabe-project/sabe/vertex"
)

// readRecords decodes every vertex record framed in path, in encounter
// order. Edge records, if any, are ignored: the subcommands that consume
// this helper rebuild edges from each vertex.Record's own edge lists.
func readRecords(path string, allowMultiples bool) ([]*vertex.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := stream.NewReader(f, allowMultiples)
	var records []*vertex.Record
	for {
		rec, err := r.ReadRecord()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.Kind == stream.KindVertex {
			records = append(records, rec.Vertex)
		}
	}
	return records, nil
}

// openOutput opens path for writing, or returns os.Stdout when path is "-"
// or empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeRecords frames each record onto w in the given edge format.
func writeRecords(w io.Writer, records []*vertex.Record, format vertex.EdgeFormat) error {
	sw := stream.NewWriter(w)
	for _, r := range records {
		if err := sw.WriteVertex(r, format); err != nil {
			return err
		}
	}
	return nil
}

// writePartitioned frames each record into the branch/chain output files
// named outDir/branch and outDir/chain, created fresh.
func writePartitioned(outDir string, records []*vertex.Record, format vertex.EdgeFormat) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	branchFile, err := os.Create(fmt.Sprintf("%s/branch", outDir))
	if err != nil {
		return err
	}
	defer branchFile.Close()
	chainFile, err := os.Create(fmt.Sprintf("%s/chain", outDir))
	if err != nil {
		return err
	}
	defer chainFile.Close()

	pw := stream.NewPartitionedWriter(stream.DefaultPartitioner, map[string]*stream.Writer{
		"branch": stream.NewWriter(branchFile),
		"chain":  stream.NewWriter(chainFile),
	})
	for _, r := range records {
		if err := pw.WriteVertex(r, format); err != nil {
			return err
		}
	}
	return nil
}

func outputFormat(includeFromEdges bool) vertex.EdgeFormat {
	if includeFromEdges {
		return vertex.EdgesToFrom
	}
	return vertex.EdgesTo
}
