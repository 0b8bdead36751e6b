package point

import (
	"math/bits"
	"sort"
)

// Point pairs a relabeled index with the partition mask computed against
// the median pivot of the full label set, and the original label value.
type Point struct {
	// ID is the point's position in the layered sort order.
	ID int
	// Mask is the partition mask relative to the median pivot.
	Mask Mask
	// Label is the point's original coordinate tuple.
	Label Label
}

// sortKey materializes the four-tuple sort criteria for one point so it can
// be compared cheaply during OrderByPartition's sort pass.
type sortKey struct {
	origIndex int
	popcount  int
	mask      Mask
	l1        int
	label     Label
}

func lessLabel(a, b Label) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func lessSortKey(a, b sortKey) bool {
	switch {
	case a.popcount != b.popcount:
		return a.popcount < b.popcount
	case a.mask != b.mask:
		return a.mask < b.mask
	case a.l1 != b.l1:
		return a.l1 < b.l1
	default:
		return lessLabel(a.label, b.label)
	}
}

// OrderByPartition computes, for a set of labels, the ascending layered
// sort order described in spec §4.1: primary key popcount(mask), then mask
// as an unsigned integer, then L1 norm, then lexicographic label order,
// where mask is the partition against the dimension-wise median pivot.
//
// It returns toOriginal, a mapping from new (sorted) index to original
// index, and the reordered Points themselves indexed by their new id.
func OrderByPartition(labels []Label) (toOriginal []int, sorted []Point) {
	if len(labels) == 0 {
		panic(ErrEmptyLabelSet)
	}

	pivot := MedianPivot(labels)
	masks := make([]Mask, len(labels))
	for i, l := range labels {
		masks[i] = DeterminePartition(l, pivot)
	}

	keys := make([]sortKey, len(labels))
	for i, l := range labels {
		keys[i] = sortKey{
			origIndex: i,
			popcount:  bits.OnesCount32(uint32(masks[i])),
			mask:      masks[i],
			l1:        l.L1Norm(),
			label:     l,
		}
	}
	sort.Slice(keys, func(i, j int) bool { return lessSortKey(keys[i], keys[j]) })

	toOriginal = make([]int, len(keys))
	sorted = make([]Point, len(keys))
	for newIndex, k := range keys {
		toOriginal[newIndex] = k.origIndex
		sorted[newIndex] = Point{ID: newIndex, Mask: masks[k.origIndex], Label: labels[k.origIndex]}
	}

	return toOriginal, sorted
}

// InvertMapping returns the inverse permutation of mapping: for every new
// index i, mapping[i] is the original index, and the result maps that
// original index back to i.
func InvertMapping(mapping []int) []int {
	inverse := make([]int, len(mapping))
	for newIndex, origIndex := range mapping {
		inverse[origIndex] = newIndex
	}
	return inverse
}
