package bincore

// ShrinkToMaxKCore removes, by repeated peeling, every vertex that cannot
// belong to a k-core: it seeds a removal queue either from
// initialVertexToRemove (when non-nil) or from every vertex currently
// below degree k per the bin sort, then drains the queue via RemoveNode,
// marking each removed vertex inactive in active.
//
// It returns the number of vertices and edges removed. If the bin sort
// has no bin for degree k (the whole graph has max degree < k), every
// vertex is marked inactive and the full vertex/zero-edge count returned.
func (s *State) ShrinkToMaxKCore(k int, initialVertexToRemove *int, edges [][]int, active []bool) (removedNodes, removedEdges int) {
	var queue []int

	if initialVertexToRemove != nil {
		queue = append(queue, *initialVertexToRemove)
	} else if len(s.BinBoundaries) >= k+1 {
		for i := 0; i < s.BinBoundaries[k]; i++ {
			queue = append(queue, s.SortedIndices[i])
		}
	} else {
		for i := range active {
			active[i] = false
		}
		return len(edges), 0
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !active[v] {
			continue
		}
		active[v] = false
		removedEdges += s.RemoveNode(k, v, edges, active, &queue)
		removedNodes++
	}

	return removedNodes, removedEdges
}
