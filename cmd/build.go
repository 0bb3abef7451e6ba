package cmd

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/external"
	"github.com/sabe-project/sabe/vertex"
)

// lineParser implements external.InputParser over the semicolon-delimited
// line format vertex.MarshalText/UnmarshalText produce: one record per
// line, blank lines and lines starting with "#" skipped.
type lineParser struct {
	allowMultiples bool
}

var _ external.InputParser = lineParser{}

func (p lineParser) Parse(ctx context.Context, r io.Reader) ([]vertex.Record, error) {
	scanner := bufio.NewScanner(r)
	var records []vertex.Record
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := vertex.UnmarshalText(line, p.allowMultiples)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build <input>",
	Short: "Parse a text-format record file into the framed vertex-record stream",
	Long: `Parse an input file of semicolon-delimited vertex records (as produced by
vertex.MarshalText) into partition-local vertex-record representations and
emit the framed binary stream, partitioned into branch/chain output files
when --partition-branches-chains is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		parsed, err := lineParser{allowMultiples: cfg.AllowEdgeMultiples}.Parse(c.Context(), f)
		if err != nil {
			return err
		}
		records := make([]*vertex.Record, len(parsed))
		for i := range parsed {
			records[i] = &parsed[i]
		}

		format := outputFormat(cfg.IncludeFromEdges)
		if cfg.PartitionBranchesChains {
			out := buildOut
			if out == "" {
				out = "."
			}
			return writePartitioned(out, records, format)
		}

		w, err := openOutput(buildOut)
		if err != nil {
			return err
		}
		defer w.Close()
		return writeRecords(w, records, format)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output path, or a directory when partitioning is on (default stdout, or \".\")")
	rootCmd.AddCommand(buildCmd)
}
