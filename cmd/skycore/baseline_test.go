package main

import (
	"sort"
	"testing"

	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, group := range groups {
		g := append([]int(nil), group...)
		sort.Ints(g)
		out[i] = g
	}
	sort.Slice(out, func(i, j int) bool {
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

func TestGetSkylineCommunitiesBaseline_K4Domination(t *testing.T) {
	// K4 with labels 0->(1,1), 1->(2,2), 2->(3,3), 3->(4,4); the triple
	// containing 3 has worst-point (4,4), dominated by (3,3).
	edges := [][]int{
		{1, 2, 3},
		{0, 2, 3},
		{0, 1, 3},
		{0, 1, 2},
	}
	labels := []point.Label{{1, 1}, {2, 2}, {3, 3}, {4, 4}}

	g, err := skygraph.NewGraph(edges, labels)
	require.NoError(t, err)

	groups := GetSkylineCommunitiesBaseline(g, 2, 3)

	original := make([][]int, len(groups))
	for i, group := range groups {
		relabelled := make([]int, len(group))
		for j, v := range group {
			relabelled[j] = g.ToOriginal[v]
		}
		original[i] = relabelled
	}

	assert.Equal(t, [][]int{{0, 1, 2}}, normalizeGroups(original))
}
