// Package cmd is the sabe command-line harness: build, prune, compress,
// assemble and export, wired over the core packages and bound to
// config.Config via Viper.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sabe-project/sabe/config"
)

var v = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "sabe",
	Short:   "Assemble a de Bruijn graph from short reads into reconstructed sequences",
	Version: "0.1.0",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("allow-edge-multiples", false, "keep parallel edges between the same pair of vertices instead of collapsing them")
	flags.Bool("compress-multiples-must-match", true, "require equal out-multiplicity when compressing a chain pair")
	flags.Bool("include-from-edges", false, "include each record's in-edges in emitted output")
	flags.Bool("partition-branches-chains", true, "route branch and chain records to separate output streams")
	flags.Int("coverage", -1, "minimum coverage to survive pruning; <= 0 disables pruning in assemble and is rejected by prune")
	flags.Int("termination-count", 1, "consecutive silent compression rounds required to stop")

	for _, name := range []string{
		"allow-edge-multiples",
		"compress-multiples-must-match",
		"include-from-edges",
		"partition-branches-chains",
		"coverage",
		"termination-count",
	} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(v)
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
