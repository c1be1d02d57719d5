// Package config parses and validates cmd/fresub's command-line
// flags into a single Options value: flags are bound directly to
// struct fields via pflag's IntVar(P)/BoolVar(P), the two paths are taken
// from the positional arguments, and everything is validated
// once after parsing rather than scattered through the command's Run
// function.
package config
