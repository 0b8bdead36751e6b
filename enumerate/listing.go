package enumerate

import "github.com/nkiran-dev/skycore/topo"

// listKCoresRecursive extends gInfo.Group through every candidate in its
// tailset, emitting a completed group whenever the group reaches
// groupSize-1 members and the candidate is admissible, and recursing
// otherwise.
func listKCoresRecursive(gInfo GroupInfo, edges [][]int, candidates *[][]int, groupSize, coreSize int) {
	maxMissedConnections := groupSize - coreSize - 1

	for i, newNode := range gInfo.Tailset {
		neighbors := topo.Intersect(topo.Reverse(edges[newNode]), gInfo.Group)
		numNotInIntersection := len(gInfo.Group) - len(neighbors)

		if numNotInIntersection > maxMissedConnections {
			continue
		}

		if len(gInfo.Group) == groupSize-1 {
			group := append(append([]int(nil), gInfo.Group...), newNode)
			*candidates = append(*candidates, group)
			continue
		}

		next := getNewGroupInfo(gInfo.Group, gInfo.MissedConnectionsCount, gInfo.Tailset[i+1:], neighbors, edges, newNode, maxMissedConnections, groupSize)
		listKCoresRecursive(next, edges, candidates, groupSize, coreSize)
	}
}

// ListKCoresWithPrefix returns every size-groupSize, minimum-degree-coreSize
// induced subgraph of nodes that contains nodes[0], predicated on nodes
// already being restricted to vertices within the required hop distance
// of nodes[0].
//
// When groupSize == coreSize+1 the only admissible groups are cliques, so
// the search starts from nodes[0]'s own neighborhood instead of the full
// nodes slice, a significant pruning shortcut for that common case.
func ListKCoresWithPrefix(nodes []int, edges [][]int, groupSize, coreSize int) [][]int {
	var kcores [][]int
	if len(nodes) < groupSize {
		return kcores
	}

	prefixNode := nodes[0]
	var tailset []int
	if groupSize == coreSize+1 {
		tailset = topo.Reverse(edges[prefixNode])
	} else {
		tailset = append([]int(nil), nodes[1:]...)
	}

	listKCoresRecursive(GroupInfo{
		Group:                  []int{prefixNode},
		MissedConnectionsCount: []int{0},
		Tailset:                tailset,
	}, edges, &kcores, groupSize, coreSize)

	return kcores
}
