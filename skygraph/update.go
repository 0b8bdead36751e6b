package skygraph

import (
	"sort"

	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skylayer"
)

// UpdateGraph relabels g's vertices into layered sort order, reorders its
// edge lists and labels to match, and rebuilds the sky-layer index.
//
// Call this after mutating g.Labels directly; NewGraph calls it once
// during construction and nothing else in this package needs to call it
// again, since the algorithms downstream only ever remove vertices, which
// does not disturb layered order.
func UpdateGraph(g *Graph) {
	n := len(g.Labels)
	g.Size = n

	toOriginal, sortedPoints := point.OrderByPartition(g.Labels)
	g.ToOriginal = toOriginal
	g.ToRelabelled = point.InvertMapping(toOriginal)
	g.Labels = reorderLabels(g.Labels, toOriginal)
	g.Edges = transformEdgeLists(g.Edges, toOriginal, g.ToRelabelled)

	layers := skylayer.GenerateSkyLayers(sortedPoints)
	g.SkyLayersBoundaries = make([]int, len(layers)+1)
	g.LayerRepresentatives = make([]point.Label, len(layers))
	for i, layer := range layers {
		g.SkyLayersBoundaries[i+1] = g.SkyLayersBoundaries[i] + len(layer.Points)
		g.LayerRepresentatives[i] = layer.Representative()
	}
}

func reorderLabels(labels []point.Label, toOriginal []int) []point.Label {
	reordered := make([]point.Label, len(toOriginal))
	for newIndex, origIndex := range toOriginal {
		reordered[newIndex] = labels[origIndex]
	}
	return reordered
}

// transformEdgeLists reindexes edges from original vertex ids to relabeled
// ids and re-sorts each neighbor list in descending order, the invariant
// RemoveVertex depends on.
func transformEdgeLists(edges [][]int, toOriginal []int, toRelabelled []int) [][]int {
	n := len(edges)
	resorted := make([][]int, n)
	for newIndex, origIndex := range toOriginal {
		resorted[newIndex] = append([]int(nil), edges[origIndex]...)
	}
	for v := 0; v < n; v++ {
		for i, neighbor := range resorted[v] {
			resorted[v][i] = toRelabelled[neighbor]
		}
		sort.Sort(sort.Reverse(sort.IntSlice(resorted[v])))
	}
	return resorted
}
