package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Options is the fully parsed, validated configuration for one run of
// cmd/fresub.
type Options struct {
	Input       string
	Output      string
	CutSize     int
	MaxGates    int
	Parallelism int
	ASCII       bool
	Verbose     bool
	Stats       bool
}

// ErrMissingPaths is returned when Validate is called without both an
// input and an output path.
var ErrMissingPaths = errors.New("config: both an input and an output AIG path are required")

// ErrBadCutSize is returned when -c is not positive.
var ErrBadCutSize = errors.New("config: -c must be positive")

// RegisterFlags binds fs's flags directly to a fresh Options' fields.
func RegisterFlags(fs *pflag.FlagSet) *Options {
	o := &Options{}
	fs.IntVarP(&o.CutSize, "cut-size", "c", 4, "maximum cut leaf count explored per window")
	fs.IntVar(&o.MaxGates, "max-gates", 4, "maximum gate count exact synthesis may return")
	fs.IntVarP(&o.Parallelism, "parallelism", "p", 0, "worker count for the per-window feasibility+synthesis phase (0 disables it)")
	fs.BoolVar(&o.ASCII, "ascii", false, "write the output file in ASCII AIGER format instead of binary")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log each applied resubstitution at debug level")
	fs.BoolVarP(&o.Stats, "stats", "s", false, "print gate-count and candidate statistics after optimizing")
	return o
}

// Validate checks that positional args supplied exactly an input and
// an output path and that flag values are in range, filling Input and
// Output from args.
func (o *Options) Validate(args []string) error {
	if len(args) != 2 {
		return ErrMissingPaths
	}
	o.Input, o.Output = args[0], args[1]
	if o.CutSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCutSize, o.CutSize)
	}
	if o.MaxGates < 0 {
		return fmt.Errorf("config: -max-gates must be non-negative, got %d", o.MaxGates)
	}
	return nil
}
