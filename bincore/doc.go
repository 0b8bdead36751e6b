// Package bincore maintains a bin-sort of vertices by degree so that
// k-core peeling can remove vertices and keep the sort incrementally
// updated in amortized O(1) per affected neighbor, instead of re-sorting
// from scratch after every removal.
//
// State.SortedIndices holds vertex ids grouped by ascending degree;
// State.BinBoundaries[d] is the position in SortedIndices where degree-d
// vertices begin; State.NodePosition is the inverse, vertex id to its
// current slot in SortedIndices.
package bincore
