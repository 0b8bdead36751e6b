package skyline

import (
	"github.com/nkiran-dev/skycore/bincore"
	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
)

// initialiseToMaxKCore computes the graph's maximum coreSize-core in
// place: every vertex not in it is marked inactive in the returned
// membership slice. The returned state keeps the bin-sort bookkeeping the
// drivers need to keep shrinking the k-core incrementally as vertices
// are swept.
func initialiseToMaxKCore(g *skygraph.Graph, coreSize int) (bincore.State, []bool, int) {
	state := bincore.BinSortByDegree(g.Edges)

	inMaxKCore := make([]bool, g.Size)
	for i := range inMaxKCore {
		inMaxKCore[i] = true
	}

	removed, _ := state.ShrinkToMaxKCore(coreSize, nil, g.Edges, inMaxKCore)
	return state, inMaxKCore, g.Size - removed
}

// updateSkyline appends candidate to the accumulating skyline unless an
// already-accepted group dominates it.
func updateSkyline(candidate []int, labels []point.Label, skylineCommunities *[][]int, skylineRepresentatives *[]point.Label) {
	if candidate == nil {
		return
	}
	if !dominance.IsDominatedBySkyline(candidate, *skylineCommunities, labels) {
		*skylineCommunities = append(*skylineCommunities, candidate)
		*skylineRepresentatives = append(*skylineRepresentatives, dominance.GetWorstVirtualPoint(candidate, labels))
	}
}

// getLastGroup collects every still-active vertex in [start, end), used
// when the maximum k-core has shrunk to exactly one remaining group.
func getLastGroup(start, end int, inMaxKCore []bool) []int {
	group := make([]int, 0, end-start)
	for v := start; v < end; v++ {
		if inMaxKCore[v] {
			group = append(group, v)
		}
	}
	return group
}

// checkBoundaryCases reports whether the outer sweep can stop: either
// too few active vertices remain to form another group, exactly one
// group's worth remain (which is reported directly), or the next
// sky-layer's representative is already dominated by the skyline found
// so far.
func checkBoundaryCases(g *skygraph.Graph, numRemaining, nextVertex, groupSize int, inMaxKCore []bool, skylineCommunities *[][]int, skylineRepresentatives *[]point.Label, layerNumber *int) bool {
	switch {
	case numRemaining < groupSize:
		return true
	case numRemaining == groupSize:
		updateSkyline(getLastGroup(nextVertex, g.Size, inMaxKCore), g.Labels, skylineCommunities, skylineRepresentatives)
		return true
	case *layerNumber < len(g.LayerRepresentatives) && nextVertex == g.SkyLayersBoundaries[*layerNumber]:
		if dominance.CanTerminate(*skylineRepresentatives, g.LayerRepresentatives[*layerNumber]) {
			return true
		}
		*layerNumber++
	}
	return false
}

// hopsFor returns the k-hop radius the cousins-first enumerator needs:
// one hop suffices when every member beyond the prefix must be its
// direct neighbor (groupSize - coreSize == 1), otherwise two hops (the
// maximum diameter of a connected k-core per Conte et al., KDD 2018).
func hopsFor(groupSize, coreSize int) int {
	if groupSize-coreSize == 1 {
		return 1
	}
	return 2
}
