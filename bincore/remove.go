package bincore

import "sort"

// RemoveNode deactivates every edge from u to an active neighbor, swapping
// each affected neighbor to the front of its degree bin and appending it
// to queue when its new degree falls below k. It returns the number of
// active neighbors processed (i.e. the number of edges removed).
//
// u itself must already be marked inactive by the caller; RemoveNode only
// updates u's neighbors' bookkeeping.
func (s *State) RemoveNode(k, u int, edges [][]int, active []bool, queue *[]int) int {
	removed := 0

	neighbors := edges[u]
	for i := len(neighbors) - 1; i >= 0; i-- {
		e := neighbors[i]
		if !active[e] {
			continue
		}
		removed++

		ePos := s.NodePosition[e]
		binNumber := upperBoundIndex(s.BinBoundaries, ePos) - 1
		binFirstIndex := s.BinBoundaries[binNumber]
		binFirstNode := s.SortedIndices[binFirstIndex]

		if e != binFirstNode {
			s.NodePosition[e] = binFirstIndex
			s.NodePosition[binFirstNode] = ePos
			s.SortedIndices[ePos] = binFirstNode
			s.SortedIndices[binFirstIndex] = e
		}

		s.BinBoundaries[binNumber]++
		if binNumber-1 < k {
			*queue = append(*queue, e)
		}
	}

	return removed
}

// upperBoundIndex returns the position of the first element of boundaries
// strictly greater than pos, mirroring std::upper_bound.
func upperBoundIndex(boundaries []int, pos int) int {
	return sort.Search(len(boundaries), func(i int) bool { return boundaries[i] > pos })
}
