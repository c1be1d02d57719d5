// Command fresub reads an AIGER file, runs resubstitution, and writes
// the result to another AIGER file, reporting statistics and tracing
// per the -s and -v flags.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MyskYko/fresub/aig/resub"
	"github.com/MyskYko/fresub/aiger"
	"github.com/MyskYko/fresub/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fresub <input.aig> <output.aig>",
		Short: "Resubstitution-based AIG gate-count optimizer",
		Long: `fresub reads an And-Inverter Graph from an AIGER file, locally
rewrites windows that a smaller exact-synthesis result can replace, and
writes the optimized graph back out, preserving every PO's function.`,
		SilenceUsage: true,
	}
	opts := config.RegisterFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := opts.Validate(args); err != nil {
			return err
		}
		return run(opts)
	}
	return cmd
}

func run(opts *config.Options) error {
	in, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("fresub: %w", err)
	}
	defer in.Close()

	g, err := aiger.Read(in)
	if err != nil {
		return fmt.Errorf("fresub: reading %s: %w", opts.Input, err)
	}

	var logger *logrus.Logger
	if opts.Verbose {
		logger = logrus.New()
		logger.SetLevel(logrus.DebugLevel)
	}

	stats, err := resub.Run(g,
		resub.WithCutSize(opts.CutSize),
		resub.WithMaxGates(opts.MaxGates),
		resub.WithLogger(logger),
		resub.WithParallelism(opts.Parallelism),
	)
	if err != nil {
		return fmt.Errorf("fresub: optimizing: %w", err)
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("fresub: %w", err)
	}
	defer out.Close()

	writeFn := aiger.Write
	if opts.ASCII {
		writeFn = aiger.WriteASCII
	}
	if err := writeFn(out, g); err != nil {
		return fmt.Errorf("fresub: writing %s: %w", opts.Output, err)
	}

	if opts.Stats {
		fmt.Printf("windows explored:    %d\n", stats.WindowsExplored)
		fmt.Printf("candidates found:    %d\n", stats.CandidatesFound)
		fmt.Printf("candidates applied:  %d\n", stats.CandidatesApplied)
		fmt.Printf("candidates stale:    %d\n", stats.CandidatesStale)
		fmt.Printf("gates removed:       %d\n", stats.GatesRemoved)
	}
	return nil
}
