package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/prune"
)

var pruneOut string

var pruneCmd = &cobra.Command{
	Use:   "prune <input>",
	Short: "Reject vertex records that fail the coverage threshold",
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
		kept := records[:0:0]
		rejected := 0
		for _, r := range records {
			survived, err := prune.Prune(r, cfg.Coverage)
			if err != nil {
				return err
			}
			if !survived {
				rejected++
				continue
			}
			kept = append(kept, r)
		}
		log.Info().Int("kept", len(kept)).Int("rejected", rejected).Msg("coverage pruning complete")

		w, err := openOutput(pruneOut)
		if err != nil {
			return err
		}
		defer w.Close()
		return writeRecords(w, kept, outputFormat(cfg.IncludeFromEdges))
	},
}

func init() {
	pruneCmd.Flags().StringVarP(&pruneOut, "out", "o", "", "output path (default stdout)")
	rootCmd.AddCommand(pruneCmd)
}
