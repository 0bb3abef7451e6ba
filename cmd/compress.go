package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/compress"
)

var compressOut string

var compressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Run chain compression to fixpoint over a stream of non-branch records",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		records, err := readRecords(args[0], cfg.AllowEdgeMultiples)
		if err != nil {
			return err
		}

		log := newLogger()
		runCtx := compress.NewRunContext(cfg.TerminationCount)
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		result, err := compress.RunToFixpoint(records, runCtx, rnd, cfg.CompressMultiplesMustMatch, nil)
		if err != nil {
			return err
		}
		log.Info().
			Str("run_id", runCtx.ID.String()).
			Int("rounds", runCtx.Round).
			Int("input_records", len(records)).
			Int("output_records", len(result)).
			Msg("compression converged")

		w, err := openOutput(compressOut)
		if err != nil {
			return err
		}
		defer w.Close()
		return writeRecords(w, result, outputFormat(cfg.IncludeFromEdges))
	},
}

func init() {
	compressCmd.Flags().StringVarP(&compressOut, "out", "o", "", "output path (default stdout)")
	rootCmd.AddCommand(compressCmd)
}
