package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/assemble"
	"github.com/sabe-project/sabe/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <input>",
	Short: "Render the graph built from a vertex-record stream as Graphviz DOT",
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

		g, err := assemble.BuildGraph(records, cfg.AllowEdgeMultiples)
		if err != nil {
			return err
		}
		dot, err := export.Dump(g)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), dot)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
