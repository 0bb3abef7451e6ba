// Package config defines the six tunables of an assembly run and loads
// them through Viper: a YAML settings file, SABE_-prefixed environment
// variables, or flags bound by the cmd package, in that order of increasing
// precedence.
package config
