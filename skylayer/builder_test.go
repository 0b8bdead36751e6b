package skylayer_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/point"
	"github.com/nkiran-dev/skycore/skylayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asPoints(labels []point.Label) []point.Point {
	_, sorted := point.OrderByPartition(labels)
	return sorted
}

func TestGenerateSkyLayers_EmptyInput(t *testing.T) {
	layers := skylayer.GenerateSkyLayers(nil)
	assert.Nil(t, layers)
}

func TestGenerateSkyLayers_SingleLayerWhenAllIncomparable(t *testing.T) {
	// A classic antichain: no point dominates another.
	labels := []point.Label{{1, 5}, {2, 4}, {3, 3}, {4, 2}, {5, 1}}
	layers := skylayer.GenerateSkyLayers(asPoints(labels))

	require.Len(t, layers, 1)
	assert.Len(t, layers[0].Points, len(labels))
}

func TestGenerateSkyLayers_ChainProducesOneLayerPerPoint(t *testing.T) {
	// A strict chain: each point dominates the next, so each gets its own layer.
	labels := []point.Label{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	layers := skylayer.GenerateSkyLayers(asPoints(labels))

	require.Len(t, layers, len(labels))
	for _, l := range layers {
		assert.Len(t, l.Points, 1)
	}
	// Layer 0 must hold the globally best point.
	assert.Equal(t, point.Label{1, 1}, layers[0].Points[0].Label)
}

func TestGenerateSkyLayers_EqualPointsShareALayer(t *testing.T) {
	labels := []point.Label{{1, 1}, {1, 1}, {2, 2}}
	layers := skylayer.GenerateSkyLayers(asPoints(labels))

	require.GreaterOrEqual(t, len(layers), 1)
	total := 0
	for _, l := range layers {
		total += len(l.Points)
	}
	assert.Equal(t, len(labels), total)

	foundDup := false
	for _, l := range layers {
		count := 0
		for _, p := range l.Points {
			if p.Label.Equal(point.Label{1, 1}) {
				count++
			}
		}
		if count == 2 {
			foundDup = true
		}
	}
	assert.True(t, foundDup, "both equal points should land in the same layer")
}

func TestGenerateSkyLayers_RepresentativeIsDimensionWiseMin(t *testing.T) {
	labels := []point.Label{{1, 5}, {2, 4}, {3, 3}}
	layers := skylayer.GenerateSkyLayers(asPoints(labels))
	require.Len(t, layers, 1)

	rep := layers[0].Representative()
	assert.Equal(t, point.Label{1, 3}, rep)
}

func TestLayer_Representative_EmptyLayer(t *testing.T) {
	var l skylayer.Layer
	assert.Nil(t, l.Representative())
}

func TestGenerateSkyLayers_TotalPointsPreserved(t *testing.T) {
	labels := []point.Label{
		{1, 9, 3}, {4, 2, 8}, {7, 7, 1}, {2, 2, 2}, {9, 9, 9}, {5, 1, 6},
	}
	layers := skylayer.GenerateSkyLayers(asPoints(labels))

	total := 0
	for _, l := range layers {
		total += len(l.Points)
	}
	assert.Equal(t, len(labels), total)
}
