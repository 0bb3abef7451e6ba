package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/assemble"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <input>",
	Short: "Run build -> prune -> compress-to-fixpoint -> tour end to end and print reconstructed paths",
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
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		a := assemble.New(cfg, nil, rnd, log)

		tours, err := a.Run(c.Context(), records)
		if err != nil {
			return err
		}

		for i, tour := range tours {
			fmt.Fprintf(c.OutOrStdout(), "tour %d:", i)
			for _, v := range tour {
				fmt.Fprintf(c.OutOrStdout(), " %d", v)
			}
			fmt.Fprintln(c.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)
}
