// Package cmd implements the sabe command-line harness: build, prune,
// compress, assemble and export subcommands over the framed vertex-record
// stream, with the six engine tunables bound to persistent flags via
// Viper. Only this package and assemble log; the core packages stay
// silent.
package cmd
