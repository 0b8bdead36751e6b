package topo

// khopQueueEntry pairs a vertex with the number of hops taken to reach it.
type khopQueueEntry struct {
	vertex int
	hops   int
}

// KHopNeighborhood returns, in ascending order, every vertex with id >= u
// that is active and reachable from u within numHops hops using only
// edges to other vertices with id >= u. A nil numHops means "no limit",
// which in practice returns u's entire connected component restricted to
// id >= u.
//
// Restricting to id >= u is deliberate: the cousins-first enumerator only
// ever needs a prefix vertex's neighborhood among vertices that could
// still extend a group rooted at that prefix, and those always have a
// larger id under the layered sort order.
func KHopNeighborhood(u int, edges [][]int, active []bool, numHops *int) []int {
	n := len(edges)
	remaining := n - u

	limit := remaining
	if numHops != nil {
		limit = *numHops
	}

	visited := make([]bool, remaining)
	queue := []khopQueueEntry{{vertex: u, hops: 0}}
	numVisited := 0

	for len(queue) > 0 && numVisited < remaining {
		entry := queue[0]
		queue = queue[1:]

		if visited[entry.vertex-u] {
			continue
		}
		visited[entry.vertex-u] = true
		numVisited++

		if entry.hops < limit {
			for _, neighbor := range edges[entry.vertex] {
				if !active[neighbor] {
					continue
				}
				if neighbor > u && !visited[neighbor-u] {
					queue = append(queue, khopQueueEntry{vertex: neighbor, hops: entry.hops + 1})
				}
			}
		}
	}

	result := make([]int, 0, numVisited)
	for i := 0; i < remaining; i++ {
		if visited[i] {
			result = append(result, u+i)
		}
	}
	return result
}

// ConnectedComponent returns u's entire connected component restricted to
// active vertices with id >= u.
func ConnectedComponent(u int, edges [][]int, active []bool) []int {
	return KHopNeighborhood(u, edges, active, nil)
}
