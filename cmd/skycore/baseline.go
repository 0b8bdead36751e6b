package main

import (
	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/nkiran-dev/skycore/topo"
)

// GetSkylineCommunitiesBaseline is a brute-force reference: for every
// vertex u (ascending), it enumerates all size-groupSize combinations
// drawn from u's 2-hop neighborhood that include u, keeps the ones that
// are connected k-cores, and filters the accumulated candidate pool
// down to its non-dominated members. It is asymptotically worse than
// the cousins-first enumerator — it does not prune on partial-group
// feasibility the way the cousins-first admission rule does — but
// gives CLI option 2 real, independently-derived behavior to check the
// core drivers against.
func GetSkylineCommunitiesBaseline(g *skygraph.Graph, coreSize, groupSize int) [][]int {
	active := make([]bool, g.Size)
	for v := range active {
		active[v] = true
	}

	var candidates [][]int
	hops := 2
	for u := 0; u < g.Size; u++ {
		neighborhood := topo.KHopNeighborhood(u, g.Edges, active, &hops)
		candidates = append(candidates, combinationsContaining(u, neighborhood, groupSize, g.Edges, coreSize)...)
	}

	return filterSkyline(candidates, g.Labels)
}

// combinationsContaining returns every size-groupSize subset of pool
// that contains u and induces a connected coreSize-core.
func combinationsContaining(u int, pool []int, groupSize int, edges [][]int, coreSize int) [][]int {
	rest := make([]int, 0, len(pool))
	for _, v := range pool {
		if v != u {
			rest = append(rest, v)
		}
	}

	var results [][]int
	var build func(start int, chosen []int)
	build = func(start int, chosen []int) {
		if len(chosen) == groupSize {
			group := append([]int(nil), chosen...)
			if topo.IsKCore(group, edges, coreSize) && topo.IsConnected(group, edges) {
				results = append(results, group)
			}
			return
		}
		if start >= len(rest) {
			return
		}
		remainingSlots := groupSize - len(chosen)
		for i := start; i <= len(rest)-remainingSlots; i++ {
			next := make([]int, len(chosen)+1)
			copy(next, chosen)
			next[len(chosen)] = rest[i]
			build(i+1, next)
		}
	}
	build(0, []int{u})

	return results
}

// filterSkyline keeps only the candidates that no other candidate
// group-dominates, an O(n^2) pairwise pass appropriate for a baseline
// that is already not attempting to be asymptotically competitive.
func filterSkyline(candidates [][]int, labels []point.Label) [][]int {
	var skyline [][]int
	for i, candidate := range candidates {
		dominated := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if dominance.GroupDominates(other, candidate, labels) {
				dominated = true
				break
			}
		}
		if !dominated {
			skyline = append(skyline, candidate)
		}
	}
	return skyline
}
