package skygraph

import "github.com/nkiran-dev/skycore/point"

// Graph is a labeled, undirected graph in relabeled vertex-id space.
//
// Edges[v] holds v's neighbors sorted in descending order, an invariant
// RemoveVertex relies on for its amortized O(degree) cost. Labels[v] is
// v's multi-dimensional label under the smaller-is-better convention from
// package point.
type Graph struct {
	Size   int
	Labels []point.Label
	Edges  [][]int

	// ToOriginal[relabeled] and ToRelabelled[original] convert between the
	// caller-supplied vertex ids and the layered sort order this package
	// assigns during construction.
	ToOriginal   []int
	ToRelabelled []int

	// SkyLayersBoundaries holds len(layers)+1 entries; layer i occupies
	// vertex ids [SkyLayersBoundaries[i], SkyLayersBoundaries[i+1]).
	SkyLayersBoundaries []int
	// LayerRepresentatives[i] is the dimension-wise-minimum label over
	// layer i's members, used by the skyline drivers for early termination.
	LayerRepresentatives []point.Label
}

// Degree returns the number of edges incident to vertex v.
func (g *Graph) Degree(v int) int {
	return len(g.Edges[v])
}

// NumLayers returns the number of sky-layers built over the graph's labels.
func (g *Graph) NumLayers() int {
	return len(g.LayerRepresentatives)
}
