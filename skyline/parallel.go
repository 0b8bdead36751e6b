package skyline

import (
	"sync"

	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/enumerate"
	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/nkiran-dev/skycore/topo"
)

// GetSkylineCommunitiesParallel is the bulk-synchronous counterpart to
// GetSkylineCommunities: each round hands at most numWorkers active
// vertices to that many goroutines, one per worker, which independently
// list and locally dedup their own candidates, cross-check against
// lower-indexed peers from the same round, and only then merge into the
// shared skyline — the goroutine-and-WaitGroup equivalent of the
// original's OpenMP `#pragma omp barrier`/`single` regions.
func GetSkylineCommunitiesParallel(g *skygraph.Graph, coreSize, groupSize, numWorkers int) ([][]int, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var skylineCommunities [][]int
	var skylineRepresentatives []point.Label
	layerNumber := 0

	state, inMaxKCore, numRemaining := initialiseToMaxKCore(g, coreSize)

	indexToProcess := 0
	indexToRemove := 0
	terminate := false

	workingIndex := make([]int, numWorkers)
	localCandidates := make([][][]int, numWorkers)

	for !terminate && indexToProcess < g.Size {
		firstVertexInRound := indexToProcess

		for i := range workingIndex {
			workingIndex[i] = g.Size
		}

		for indexToRemove < indexToProcess {
			removed, _ := state.ShrinkToMaxKCore(coreSize, &indexToRemove, g.Edges, inMaxKCore)
			numRemaining -= removed
			if numRemaining < groupSize {
				terminate = true
				break
			}
			indexToRemove++
		}

		if !terminate {
			if numRemaining == groupSize {
				updateSkyline(getLastGroup(indexToProcess, g.Size, inMaxKCore), g.Labels, &skylineCommunities, &skylineRepresentatives)
				terminate = true
			} else {
				assignRoundWork(g, inMaxKCore, workingIndex, &indexToProcess)
				terminate = advanceLayerBoundary(g, workingIndex, indexToProcess, skylineRepresentatives, &layerNumber)
			}
		}

		runRound(g, coreSize, groupSize, inMaxKCore, skylineCommunities, workingIndex, localCandidates)

		for v := firstVertexInRound; v < indexToProcess && v < g.Size; v++ {
			if err := g.RemoveVertex(v); err != nil {
				return nil, err
			}
		}

		for _, candidates := range localCandidates {
			for _, candidate := range candidates {
				skylineCommunities = append(skylineCommunities, candidate)
				skylineRepresentatives = append(skylineRepresentatives, dominance.GetWorstVirtualPoint(candidate, g.Labels))
			}
		}
	}

	return postprocess(skylineCommunities, g.Labels), nil
}

// assignRoundWork claims up to len(workingIndex) active vertices
// starting from *indexToProcess, one per worker slot, advancing
// *indexToProcess past every vertex it inspects (active or not).
func assignRoundWork(g *skygraph.Graph, inMaxKCore []bool, workingIndex []int, indexToProcess *int) {
	tID := 0
	for tID < len(workingIndex) && *indexToProcess < g.Size {
		if inMaxKCore[*indexToProcess] {
			workingIndex[tID] = *indexToProcess
			tID++
		}
		*indexToProcess++
	}
}

// advanceLayerBoundary reports whether the sweep can terminate because
// the next sky-layer's representative is already dominated by the
// skyline found so far, clearing any worker's assignment that fell
// within a layer cleared this way.
func advanceLayerBoundary(g *skygraph.Graph, workingIndex []int, indexToProcess int, skylineRepresentatives []point.Label, layerNumber *int) bool {
	for *layerNumber < len(g.LayerRepresentatives) &&
		g.SkyLayersBoundaries[*layerNumber] < indexToProcess && indexToProcess < g.Size {
		if dominance.CanTerminate(skylineRepresentatives, g.LayerRepresentatives[*layerNumber]) {
			for id := range workingIndex {
				if workingIndex[id] >= g.SkyLayersBoundaries[*layerNumber] {
					workingIndex[id] = g.Size
				}
			}
			return true
		}
		*layerNumber++
	}
	return false
}

// runRound spawns one goroutine per worker to build and locally dedup
// candidates rooted at its assigned vertex, then a second barrier round
// where each worker discards any candidate a lower-indexed worker's
// surviving candidates already dominate. localCandidates is overwritten
// in place with each worker's final survivors.
func runRound(g *skygraph.Graph, coreSize, groupSize int, inMaxKCore []bool, skylineCommunities [][]int, workingIndex []int, localCandidates [][][]int) {
	numWorkers := len(workingIndex)

	var wg sync.WaitGroup
	for t := 0; t < numWorkers; t++ {
		wg.Add(1)
		go func(threadID int) {
			defer wg.Done()
			localCandidates[threadID] = buildWorkerCandidates(workingIndex[threadID], g, groupSize, coreSize, inMaxKCore, skylineCommunities)
		}(t)
	}
	wg.Wait()

	survives := make([][]bool, numWorkers)
	for t := range localCandidates {
		survives[t] = make([]bool, len(localCandidates[t]))
		for i := range survives[t] {
			survives[t][i] = true
		}
	}

	var peerWg sync.WaitGroup
	for t := 1; t < numWorkers; t++ {
		peerWg.Add(1)
		go func(threadID int) {
			defer peerWg.Done()
			for i, candidate := range localCandidates[threadID] {
				for j := 0; j < threadID; j++ {
					if dominance.IsDominatedBySkyline(candidate, localCandidates[j], g.Labels) {
						survives[threadID][i] = false
						break
					}
				}
			}
		}(t)
	}
	peerWg.Wait()

	for t := 0; t < numWorkers; t++ {
		kept := localCandidates[t][:0]
		for i, candidate := range localCandidates[t] {
			if survives[t][i] {
				kept = append(kept, candidate)
			}
		}
		localCandidates[t] = kept
	}
}

// buildWorkerCandidates is one worker's share of a round: list every
// qualifying group rooted at vertex (or the single obvious one, when the
// neighborhood is exactly groupSize), then drop anything the shared
// skyline already dominates or that a sibling candidate in the same
// batch dominates.
func buildWorkerCandidates(vertex int, g *skygraph.Graph, groupSize, coreSize int, inMaxKCore []bool, skylineCommunities [][]int) [][]int {
	if vertex >= g.Size || g.Degree(vertex) < coreSize {
		return nil
	}

	hops := hopsFor(groupSize, coreSize)
	nodes := topo.KHopNeighborhood(vertex, g.Edges, inMaxKCore, &hops)

	var candidates [][]int
	switch {
	case len(nodes) == groupSize:
		if topo.IsKCore(nodes, g.Edges, coreSize) && !dominance.IsDominatedBySkyline(nodes, skylineCommunities, g.Labels) {
			candidates = [][]int{nodes}
		}
	case len(nodes) > groupSize:
		candidates = enumerate.ListKCoresWithPrefix(nodes, g.Edges, groupSize, coreSize)
	}

	isSkyline := make([]bool, len(candidates))
	for i := range candidates {
		isSkyline[i] = !dominance.IsDominatedBySkyline(candidates[i], skylineCommunities, g.Labels) &&
			!dominance.IsDominatedByCandidates(i, candidates, isSkyline, g.Labels)
	}

	survivors := make([][]int, 0, len(candidates))
	for i, candidate := range candidates {
		if isSkyline[i] {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}
