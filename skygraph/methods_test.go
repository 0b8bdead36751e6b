package skygraph_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveVertex_IsolatesVertexAndTrimsNeighbors(t *testing.T) {
	edges, labels := triangleWithTail()
	g, err := skygraph.NewGraph(edges, labels)
	require.NoError(t, err)

	// Find the relabeled id of original vertex 0 (degree 3, the hub).
	hub := g.ToRelabelled[0]
	originalDegrees := make(map[int]int)
	for relabeled := range g.Edges {
		originalDegrees[relabeled] = g.Degree(relabeled)
	}

	err = g.RemoveVertex(hub)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Degree(hub))

	for relabeled, before := range originalDegrees {
		if relabeled == hub {
			continue
		}
		after := g.Degree(relabeled)
		assert.LessOrEqual(t, after, before)
	}
}

func TestRemoveVertex_DetectsBrokenInvariant(t *testing.T) {
	g := &skygraph.Graph{
		Size:  2,
		Edges: [][]int{{1}, {}},
	}
	err := g.RemoveVertex(0)
	assert.ErrorIs(t, err, skygraph.ErrRemoveVertexInvariant)
}

func TestDegree_MatchesEdgeListLength(t *testing.T) {
	edges, labels := triangleWithTail()
	g, err := skygraph.NewGraph(edges, labels)
	require.NoError(t, err)

	for v := 0; v < g.Size; v++ {
		assert.Equal(t, len(g.Edges[v]), g.Degree(v))
	}
}

func TestNumLayers_MatchesBoundaries(t *testing.T) {
	edges, labels := triangleWithTail()
	g, err := skygraph.NewGraph(edges, labels)
	require.NoError(t, err)

	assert.Equal(t, len(g.SkyLayersBoundaries)-1, g.NumLayers())
}
