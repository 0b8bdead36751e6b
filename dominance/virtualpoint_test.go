package dominance_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/point"
	"github.com/stretchr/testify/assert"
)

func TestGetBestVirtualPoint(t *testing.T) {
	labels := []point.Label{{1, 9}, {5, 5}, {9, 1}}
	assert.Equal(t, point.Label{1, 1}, dominance.GetBestVirtualPoint([]int{0, 1, 2}, labels))
}

func TestGetWorstVirtualPoint(t *testing.T) {
	labels := []point.Label{{1, 9}, {5, 5}, {9, 1}}
	assert.Equal(t, point.Label{9, 9}, dominance.GetWorstVirtualPoint([]int{0, 1, 2}, labels))
}

func TestSumVirtualPoint(t *testing.T) {
	labels := []point.Label{{1, 9}, {5, 5}, {9, 1}}
	assert.Equal(t, point.Label{15, 15}, dominance.SumVirtualPoint([]int{0, 1, 2}, labels))
}

func TestVirtualPoint_SingleMember(t *testing.T) {
	labels := []point.Label{{3, 4}}
	assert.Equal(t, point.Label{3, 4}, dominance.GetBestVirtualPoint([]int{0}, labels))
	assert.Equal(t, point.Label{3, 4}, dominance.GetWorstVirtualPoint([]int{0}, labels))
}
