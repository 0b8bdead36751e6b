package bincore_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/bincore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allActive(n int) []bool {
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	return active
}

func TestShrinkToMaxKCore_RemovesLeavesForK2(t *testing.T) {
	edges := starGraph() // leaves have degree 1, hub has degree 3
	state := bincore.BinSortByDegree(edges)
	active := allActive(len(edges))

	removedNodes, removedEdges := state.ShrinkToMaxKCore(2, nil, edges, active)

	assert.Equal(t, len(edges), removedNodes, "no 2-core exists in a star graph")
	assert.Equal(t, len(edges)-1, removedEdges)
	for _, a := range active {
		assert.False(t, a)
	}
}

func TestShrinkToMaxKCore_KeepsFullyConnectedGraphAtK1(t *testing.T) {
	// Triangle: every vertex has degree 2 >= 1.
	edges := [][]int{
		{1, 2},
		{0, 2},
		{0, 1},
	}
	state := bincore.BinSortByDegree(edges)
	active := allActive(len(edges))

	removedNodes, removedEdges := state.ShrinkToMaxKCore(1, nil, edges, active)

	assert.Equal(t, 0, removedNodes)
	assert.Equal(t, 0, removedEdges)
	for _, a := range active {
		assert.True(t, a)
	}
}

func TestShrinkToMaxKCore_WithExplicitInitialVertex(t *testing.T) {
	edges := starGraph()
	state := bincore.BinSortByDegree(edges)
	active := allActive(len(edges))

	hub := 0
	removedNodes, _ := state.ShrinkToMaxKCore(1, &hub, edges, active)

	require.GreaterOrEqual(t, removedNodes, 1)
	assert.False(t, active[0])
}

func TestShrinkToMaxKCore_NoBinForK(t *testing.T) {
	edges := [][]int{{1}, {0}}
	state := bincore.BinSortByDegree(edges)
	active := allActive(len(edges))

	removedNodes, removedEdges := state.ShrinkToMaxKCore(5, nil, edges, active)

	assert.Equal(t, len(edges), removedNodes)
	assert.Equal(t, 0, removedEdges)
	for _, a := range active {
		assert.False(t, a)
	}
}
