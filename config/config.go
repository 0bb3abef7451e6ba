package config

import "github.com/spf13/viper"

// Config holds the six tunables that govern one assembly run.
type Config struct {
	AllowEdgeMultiples         bool `mapstructure:"allow-edge-multiples"`
	CompressMultiplesMustMatch bool `mapstructure:"compress-multiples-must-match"`
	IncludeFromEdges           bool `mapstructure:"include-from-edges"`
	PartitionBranchesChains    bool `mapstructure:"partition-branches-chains"`
	Coverage                   int  `mapstructure:"coverage"`
	TerminationCount           int  `mapstructure:"termination-count"`
}

// Defaults returns the engine's default settings: multiples off, strict
// multiplicity matching on compression, edgesFrom omitted from output,
// branch/chain partitioning on, pruning disabled (coverage -1), and one
// silent round to declare compression converged.
func Defaults() Config {
	return Config{
		AllowEdgeMultiples:         false,
		CompressMultiplesMustMatch: true,
		IncludeFromEdges:           false,
		PartitionBranchesChains:    true,
		Coverage:                   -1,
		TerminationCount:           1,
	}
}

// New returns a Viper instance seeded with Defaults, ready to layer a YAML
// settings file and SABE_-prefixed environment variables (in increasing
// precedence) on top; a caller's flags, bound separately, take precedence
// over both.
func New() *viper.Viper {
	v := viper.New()
	bindDefaults(v, Defaults())

	v.SetEnvPrefix("SABE")
	v.AutomaticEnv()

	v.SetConfigName("sabe")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return v
}

func bindDefaults(v *viper.Viper, d Config) {
	v.SetDefault("allow-edge-multiples", d.AllowEdgeMultiples)
	v.SetDefault("compress-multiples-must-match", d.CompressMultiplesMustMatch)
	v.SetDefault("include-from-edges", d.IncludeFromEdges)
	v.SetDefault("partition-branches-chains", d.PartitionBranchesChains)
	v.SetDefault("coverage", d.Coverage)
	v.SetDefault("termination-count", d.TerminationCount)
}

// Load reads whatever settings file is present, ignoring its absence, then
// unmarshals v's current state (defaults, file, environment, and any
// flags bound by the caller) into a Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, configErrorf("Load", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, configErrorf("Load", err)
	}
	return c, nil
}
