package point_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByPartition_PermutationIsBijective(t *testing.T) {
	labels := []point.Label{
		{1, 5}, {2, 4}, {3, 3}, {5, 1}, {4, 2},
	}
	toOriginal, sorted := point.OrderByPartition(labels)
	require.Len(t, toOriginal, len(labels))
	require.Len(t, sorted, len(labels))

	seen := make(map[int]bool)
	for i, orig := range toOriginal {
		assert.False(t, seen[orig], "original index %d seen twice", orig)
		seen[orig] = true
		assert.Equal(t, labels[orig], sorted[i].Label)
		assert.Equal(t, i, sorted[i].ID)
	}
	assert.Len(t, seen, len(labels))
}

func TestOrderByPartition_AscendingByPopcountThenMask(t *testing.T) {
	labels := []point.Label{
		{1, 1}, {10, 10}, {1, 10}, {10, 1}, {5, 5},
	}
	_, sorted := point.OrderByPartition(labels)

	prevPopcount := -1
	prevMask := point.Mask(0)
	for _, p := range sorted {
		pc := popcount(p.Mask)
		assert.GreaterOrEqual(t, pc, prevPopcount)
		if pc == prevPopcount {
			assert.GreaterOrEqual(t, p.Mask, prevMask)
		}
		prevPopcount = pc
		prevMask = p.Mask
	}
}

func popcount(m point.Mask) int {
	count := 0
	for m != 0 {
		count += int(m & 1)
		m >>= 1
	}
	return count
}

func TestInvertMapping(t *testing.T) {
	mapping := []int{2, 0, 1}
	inverse := point.InvertMapping(mapping)
	require.Equal(t, []int{1, 2, 0}, inverse)
	for i, orig := range mapping {
		assert.Equal(t, i, inverse[orig])
	}
}
