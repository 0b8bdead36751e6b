package skyline

import (
	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/enumerate"
	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/nkiran-dev/skycore/topo"
)

// GetSkylineCommunities finds every Pareto-optimal, connected,
// minimum-degree-coreSize, size-groupSize vertex group in g.
//
// It sweeps vertex ids in ascending (layered sort) order, maintaining
// the graph's maximum k-core incrementally: at each vertex still in that
// k-core it gathers a bounded neighborhood, lists every qualifying group
// rooted there, filters those against the skyline accumulated so far,
// then permanently removes the vertex. Sky-layer boundaries let the
// sweep stop early once no later layer can possibly improve on what has
// already been found.
func GetSkylineCommunities(g *skygraph.Graph, coreSize, groupSize int) ([][]int, error) {
	var skylineCommunities [][]int
	var skylineRepresentatives []point.Label
	layerNumber := 0

	state, inMaxKCore, numRemaining := initialiseToMaxKCore(g, coreSize)
	hops := hopsFor(groupSize, coreSize)

	for nextVertex := 0; nextVertex < g.Size; nextVertex++ {
		if inMaxKCore[nextVertex] {
			if checkBoundaryCases(g, numRemaining, nextVertex, groupSize, inMaxKCore, &skylineCommunities, &skylineRepresentatives, &layerNumber) {
				break
			}

			nodes := topo.KHopNeighborhood(nextVertex, g.Edges, inMaxKCore, &hops)
			if len(nodes) == groupSize {
				if topo.IsKCore(nodes, g.Edges, coreSize) {
					updateSkyline(nodes, g.Labels, &skylineCommunities, &skylineRepresentatives)
				}
			} else if len(nodes) > groupSize {
				listAndCheckGroups(nodes, g, groupSize, coreSize, &skylineCommunities, &skylineRepresentatives)
			}
			removed, _ := state.ShrinkToMaxKCore(coreSize, &nextVertex, g.Edges, inMaxKCore)
			numRemaining -= removed
		}

		if err := g.RemoveVertex(nextVertex); err != nil {
			return nil, err
		}
	}

	return postprocess(skylineCommunities, g.Labels), nil
}

// listAndCheckGroups lists every group rooted at vertices[0] and folds
// the survivors into the accumulating skyline, checking each candidate
// both against the skyline so far and against its own still-surviving
// siblings (a later candidate can never dominate an earlier one under
// the layered sort order, so only the prefix needs checking).
func listAndCheckGroups(vertices []int, g *skygraph.Graph, groupSize, coreSize int, skylineCommunities *[][]int, skylineRepresentatives *[]point.Label) {
	candidates := enumerate.ListKCoresWithPrefix(vertices, g.Edges, groupSize, coreSize)

	isSkyline := make([]bool, len(candidates))
	for i := range candidates {
		isSkyline[i] = !dominance.IsDominatedBySkyline(candidates[i], *skylineCommunities, g.Labels) &&
			!dominance.IsDominatedByCandidates(i, candidates, isSkyline, g.Labels)
		if isSkyline[i] {
			*skylineCommunities = append(*skylineCommunities, candidates[i])
			*skylineRepresentatives = append(*skylineRepresentatives, dominance.GetWorstVirtualPoint(candidates[i], g.Labels))
		}
	}
}
