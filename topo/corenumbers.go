package topo

import "sort"

// CoreNumbers computes the coreness of every vertex via classic peeling:
// repeatedly strip vertices whose remaining degree equals the current
// level, raising the level from 1 until no vertices remain. Vertices of
// degree 0 are never stripped and keep the value -1. It is a diagnostic,
// not a hot path, and intentionally does not share bincore's bin-sort
// machinery.
func CoreNumbers(edges [][]int) []int {
	n := len(edges)
	degrees := make([]int, n)
	for v, neighbors := range edges {
		degrees[v] = len(neighbors)
	}

	coreVals := make([]int, n)
	for i := range coreVals {
		coreVals[i] = -1
	}

	relevant := make([]int, n)
	for i := range relevant {
		relevant[i] = i
	}

	for level := 1; len(relevant) > level; level++ {
		toDelete := filterByDegree(relevant, degrees, level)

		for len(toDelete) > 0 {
			for _, v := range toDelete {
				degrees[v] = 0
				coreVals[v] = level
			}
			toDelete = filterByDegree(subtractFromNeighbors(edges, toDelete, degrees, level), degrees, level)
		}

		kept := relevant[:0]
		for _, v := range relevant {
			if degrees[v] > level {
				kept = append(kept, v)
			}
		}
		relevant = kept
	}

	return coreVals
}

func filterByDegree(vertices []int, degrees []int, target int) []int {
	filtered := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if degrees[v] == target {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// subtractFromNeighbors decrements the degree of every neighbor (above
// threshold) of every vertex in vertexSet and returns the deduplicated,
// sorted set of affected neighbors.
func subtractFromNeighbors(edges [][]int, vertexSet []int, degrees []int, threshold int) []int {
	neighbors := make([]int, 0, len(vertexSet))
	for _, v := range vertexSet {
		for _, u := range edges[v] {
			if degrees[u] > threshold {
				degrees[u]--
				neighbors = append(neighbors, u)
			}
		}
	}

	sort.Ints(neighbors)
	out := neighbors[:0]
	for i, u := range neighbors {
		if i == 0 || u != neighbors[i-1] {
			out = append(out, u)
		}
	}
	return out
}
