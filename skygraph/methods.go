package skygraph

import "fmt"

// RemoveVertex deletes every edge incident to v, leaving v itself present
// but isolated. It runs in time proportional to v's degree by exploiting
// the descending-neighbor-order invariant: v is always at the tail of
// each neighbor's adjacency list, so removal is a slice truncation rather
// than a search.
//
// The caller must not have disturbed that invariant (e.g. by inserting
// edges out of order) since the graph was built or last updated.
func (g *Graph) RemoveVertex(v int) error {
	for _, neighbor := range g.Edges[v] {
		list := g.Edges[neighbor]
		if len(list) == 0 || list[len(list)-1] != v {
			return fmt.Errorf("skygraph: removing vertex %d from neighbor %d: %w", v, neighbor, ErrRemoveVertexInvariant)
		}
		g.Edges[neighbor] = list[:len(list)-1]
	}
	g.Edges[v] = nil

	return nil
}
