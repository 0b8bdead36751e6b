package skyline

import (
	"fmt"
	"io"

	"github.com/nkiran-dev/skycore/skygraph"
)

// KCoreShrinkProfile records how many vertices remain in the shrinking
// maximum coreSize-core after each vertex in the sweep is peeled off,
// independent of skyline discovery. It is a convergence-profiling aid,
// not a correctness-bearing operation: the caller can plot its output to
// see how quickly a dataset's k-core collapses.
func KCoreShrinkProfile(g *skygraph.Graph, coreSize int) []int {
	profile := []int{g.Size}

	state, inMaxKCore, numRemaining := initialiseToMaxKCore(g, coreSize)
	profile = append(profile, numRemaining)

	for nextVertex := 0; nextVertex < g.Size; nextVertex++ {
		if inMaxKCore[nextVertex] && numRemaining > 0 {
			removed, _ := state.ShrinkToMaxKCore(coreSize, &nextVertex, g.Edges, inMaxKCore)
			numRemaining -= removed
			profile = append(profile, numRemaining)
		}
	}

	return profile
}

// WriteShrinkProfile writes profile as newline-separated counts,
// matching the original's line-per-count CSV output.
func WriteShrinkProfile(w io.Writer, profile []int) error {
	for _, count := range profile {
		if _, err := fmt.Fprintf(w, "%d\n", count); err != nil {
			return err
		}
	}
	return nil
}
