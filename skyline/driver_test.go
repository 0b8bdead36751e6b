package skyline_test

import (
	"sort"
	"testing"

	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/nkiran-dev/skycore/skyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descending sorts each neighbor list into the descending order the
// skygraph convention requires.
func descending(edges [][]int) [][]int {
	out := make([][]int, len(edges))
	for v, neighbors := range edges {
		out[v] = append([]int(nil), neighbors...)
		sort.Sort(sort.Reverse(sort.IntSlice(out[v])))
	}
	return out
}

// singleLayerGraph builds a Graph directly (bypassing skygraph.NewGraph's
// relabeling) so tests can assert on fixed, known vertex ids. It places
// every vertex in one sky-layer, which is enough for the driver's
// boundary check to advance past layer 0 on the very first vertex and
// never trigger again.
func singleLayerGraph(edges [][]int, labels []point.Label) *skygraph.Graph {
	return &skygraph.Graph{
		Size:                 len(edges),
		Labels:               labels,
		Edges:                descending(edges),
		SkyLayersBoundaries:  []int{0, len(edges)},
		LayerRepresentatives: []point.Label{labels[0]},
	}
}

func normalizeGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		copyG := append([]int(nil), g...)
		sort.Ints(copyG)
		out[i] = copyG
	}
	sort.Slice(out, func(i, j int) bool {
		for d := 0; d < len(out[i]); d++ {
			if out[i][d] != out[j][d] {
				return out[i][d] < out[j][d]
			}
		}
		return false
	})
	return out
}

// k4DominationFixture is spec scenario S2: a complete graph on 4
// vertices with strictly increasing labels, where {0,1,2}'s worst point
// bag-dominates every other triple.
func k4DominationFixture() (*skygraph.Graph, int, int) {
	edges := [][]int{
		{1, 2, 3},
		{0, 2, 3},
		{0, 1, 3},
		{0, 1, 2},
	}
	labels := []point.Label{
		{1, 1}, {2, 2}, {3, 3}, {4, 4},
	}
	return singleLayerGraph(edges, labels), 2, 3
}

// disconnectedDominatedFixture is spec scenario S4 where the first
// triangle bag-dominates the second, so only the first survives.
func disconnectedDominatedFixture() (*skygraph.Graph, int, int) {
	edges := [][]int{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
	}
	labels := []point.Label{
		{1, 1}, {2, 2}, {3, 3},
		{4, 4}, {5, 5}, {6, 6},
	}
	return singleLayerGraph(edges, labels), 2, 3
}

// disconnectedIncomparableFixture is spec scenario S4 where neither
// triangle's bag dominates the other, so both survive.
func disconnectedIncomparableFixture() (*skygraph.Graph, int, int) {
	edges := [][]int{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
	}
	labels := []point.Label{
		{1, 9}, {9, 1}, {5, 5},
		{2, 2}, {8, 8}, {5, 5},
	}
	return singleLayerGraph(edges, labels), 2, 3
}

func TestGetSkylineCommunities_K4Domination(t *testing.T) {
	g, coreSize, groupSize := k4DominationFixture()

	groups, err := skyline.GetSkylineCommunities(g, coreSize, groupSize)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, normalizeGroups(groups))
}

func TestGetSkylineCommunities_DisconnectedOneDominates(t *testing.T) {
	g, coreSize, groupSize := disconnectedDominatedFixture()

	groups, err := skyline.GetSkylineCommunities(g, coreSize, groupSize)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, normalizeGroups(groups))
}

func TestGetSkylineCommunities_DisconnectedBothIncomparable(t *testing.T) {
	g, coreSize, groupSize := disconnectedIncomparableFixture()

	groups, err := skyline.GetSkylineCommunities(g, coreSize, groupSize)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, normalizeGroups(groups))
}

func TestGetSkylineCommunitiesParallel_MatchesSequential(t *testing.T) {
	fixtures := []func() (*skygraph.Graph, int, int){
		k4DominationFixture,
		disconnectedDominatedFixture,
		disconnectedIncomparableFixture,
	}

	for _, fixture := range fixtures {
		gSeq, coreSize, groupSize := fixture()
		want, err := skyline.GetSkylineCommunities(gSeq, coreSize, groupSize)
		require.NoError(t, err)

		for _, numWorkers := range []int{1, 2, 4, 8} {
			gPar, _, _ := fixture()
			got, err := skyline.GetSkylineCommunitiesParallel(gPar, coreSize, groupSize, numWorkers)
			require.NoError(t, err)
			assert.Equal(t, normalizeGroups(want), normalizeGroups(got))
		}
	}
}

func TestKCoreShrinkProfile_MonotonicallyNonIncreasing(t *testing.T) {
	g, coreSize, _ := disconnectedDominatedFixture()

	profile := skyline.KCoreShrinkProfile(g, coreSize)
	require.NotEmpty(t, profile)
	assert.Equal(t, g.Size, profile[0])
	for i := 1; i < len(profile); i++ {
		assert.LessOrEqual(t, profile[i], profile[i-1])
	}
}
