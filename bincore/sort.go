package bincore

// State is the bin-sort-by-degree bookkeeping triple, kept consistent as
// vertices are removed via RemoveNode/ShrinkToMaxKCore.
type State struct {
	SortedIndices []int
	NodePosition  []int
	BinBoundaries []int
}

// BinSortByDegree groups vertex ids into State.SortedIndices by ascending
// degree, a single O(V+E) pass over edges.
func BinSortByDegree(edges [][]int) State {
	n := len(edges)

	maxDegree := 0
	degrees := make([]int, n)
	for v, neighbors := range edges {
		degrees[v] = len(neighbors)
		if degrees[v] > maxDegree {
			maxDegree = degrees[v]
		}
	}

	bins := make([][]int, maxDegree+1)
	for v := 0; v < n; v++ {
		bins[degrees[v]] = append(bins[degrees[v]], v)
	}

	sortedIndices := make([]int, n)
	nodePosition := make([]int, n)
	binBoundaries := make([]int, maxDegree+1)

	index := 0
	for d, bucket := range bins {
		binBoundaries[d] = index
		for _, v := range bucket {
			sortedIndices[index] = v
			nodePosition[v] = index
			index++
		}
	}

	return State{
		SortedIndices: sortedIndices,
		NodePosition:  nodePosition,
		BinBoundaries: binBoundaries,
	}
}
