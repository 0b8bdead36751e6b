// Command skycore is the command-line entry point tying loader,
// dataset, skygraph, and skyline together behind the parameter surface
// the original driver exposed: k-plex size, group size, dimension,
// dataset id, label-type id, algorithm choice, and an optional thread
// count.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// options holds the parsed and validated flag values for a single run.
type options struct {
	kPlexSize int
	groupSize int
	dimension int
	dataset   int
	labelType int
	algorithm int
	nThreads  int
	datasetsDir string
}

const (
	algorithmSequential = 0
	algorithmParallel   = 1
	algorithmBaseline   = 2
)

// coreSize derives the co-plex core size from kPlexSize and groupSize,
// matching the original's "convert to co-plex" comment verbatim.
func (o options) coreSize() int {
	return o.groupSize - o.kPlexSize - 1
}

// NewRootCommand builds the skycore cobra command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "skycore",
		Short:        "Discover skyline k-core communities in a labeled graph",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.kPlexSize, "k-plex-size", 0, "k-plex size (k); coreSize = groupSize - kPlexSize - 1")
	flags.IntVar(&opts.groupSize, "group-size", 0, "target community size (g)")
	flags.IntVar(&opts.dimension, "dimension", 0, "label dimensionality (<= 32)")
	flags.IntVar(&opts.dataset, "dataset", 0, "dataset id: 4 YouTube, 5 Casestudy, 10 LiveJournal, 11 DBLP, 12 Amazon, 13 WikiTalk, 14 CitPatent")
	flags.IntVar(&opts.labelType, "label-type", 0, "label type id: 0 independent, 1 correlated, 2 anti-correlated")
	flags.IntVar(&opts.algorithm, "algorithm", 0, "algorithm: 0 sequential skyline, 1 parallel skyline, 2 baseline")
	flags.IntVar(&opts.nThreads, "n-threads", 0, "worker count, required when algorithm=1")
	flags.StringVar(&opts.datasetsDir, "datasets-dir", "../../datasets", "directory containing edge and label CSV files")

	return cmd
}

// validate reproduces the original driver's parameter checks, in the
// same order, so error messages line up with its exit-code contract.
func (o options) validate() error {
	if o.groupSize > 2*o.coreSize()+1 || o.groupSize <= o.coreSize() {
		return fmt.Errorf("skycore: invalid k and/or g parameters (coreSize=%d, groupSize=%d)", o.coreSize(), o.groupSize)
	}
	if o.algorithm == algorithmParallel && o.nThreads < 1 {
		return fmt.Errorf("skycore: invalid number of threads: %d", o.nThreads)
	}
	if o.algorithm < algorithmSequential || o.algorithm > algorithmBaseline {
		return fmt.Errorf("skycore: invalid algorithm: %d", o.algorithm)
	}
	return nil
}
