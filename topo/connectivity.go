package topo

// IsConnected reports whether the graph induced on vertexSubset by edges
// is connected, i.e. every vertex in the subset is reachable from every
// other. Neighbors in edges that lie outside vertexSubset are ignored.
func IsConnected(vertexSubset []int, edges [][]int) bool {
	if len(vertexSubset) == 0 {
		return true
	}

	index := make(map[int]int, len(vertexSubset))
	for i, v := range vertexSubset {
		index[v] = i
	}

	visited := make([]bool, len(vertexSubset))
	queue := []int{0}
	count := 0

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true
		count++

		for _, neighbor := range edges[vertexSubset[node]] {
			if i, ok := index[neighbor]; ok {
				queue = append(queue, i)
			}
		}
	}

	return count == len(vertexSubset)
}

// IsKCore reports whether every vertex in vertexSubset has at least k
// neighbors within vertexSubset, per the edges in edges.
func IsKCore(vertexSubset []int, edges [][]int, k int) bool {
	for _, v := range vertexSubset {
		neighbors := Intersect(Reverse(edges[v]), vertexSubset)
		if len(neighbors) < k {
			return false
		}
	}
	return true
}

// IsConnectedKCore reports whether vertexSubset both is a k-core and is
// connected under edges, using intersect to compute each vertex's
// within-subset neighborhood.
func IsConnectedKCore(vertexSubset []int, edges [][]int, k int, intersect func(a, b []int) []int) bool {
	for _, v := range vertexSubset {
		neighbors := intersect(Reverse(edges[v]), vertexSubset)
		if len(neighbors) < k || len(neighbors) == 0 {
			return false
		}
	}
	return IsConnected(vertexSubset, edges)
}
