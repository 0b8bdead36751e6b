package skygraph

import (
	"fmt"
	"sort"

	"github.com/nkiran-dev/skycore/point"
)

// NewGraph builds a Graph from a raw adjacency list and matching labels.
//
// edges must be symmetric (v in edges[u] iff u in edges[v]) and free of
// self loops; NewGraph does not repair asymmetric input, it only sorts
// and validates it. Vertices are immediately relabeled into layered sort
// order and the sky-layer index is built; see UpdateGraph.
func NewGraph(edges [][]int, labels []point.Label) (*Graph, error) {
	if len(edges) != len(labels) {
		return nil, fmt.Errorf("skygraph: %w", ErrLabelEdgeSizeMismatch)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("skygraph: %w", ErrEmptyGraph)
	}

	n := len(edges)
	adjacency := make([][]int, n)
	for v, neighbors := range edges {
		for _, u := range neighbors {
			if u == v {
				return nil, fmt.Errorf("skygraph: vertex %d: %w", v, ErrSelfLoop)
			}
			if u < 0 || u >= n {
				return nil, fmt.Errorf("skygraph: neighbor %d of vertex %d: %w", u, v, ErrVertexOutOfRange)
			}
		}
		adjacency[v] = append([]int(nil), neighbors...)
		sort.Ints(adjacency[v])
	}

	g := &Graph{
		Size:   n,
		Labels: append([]point.Label(nil), labels...),
		Edges:  adjacency,
	}
	UpdateGraph(g)

	return g, nil
}
