package skylayer

import (
	"math/bits"

	"github.com/nkiran-dev/skycore/point"
)

// areIncomparable reports whether two partition masks cannot be directly
// compared under the no-duplicate bucket pruning rule: either m1 has at
// least as many set bits as m2 and they differ, or m1 is not a subset of
// m2's bits.
func areIncomparable(m1, m2 point.Mask) bool {
	return (bits.OnesCount32(uint32(m1)) >= bits.OnesCount32(uint32(m2)) && m1 != m2) ||
		(m1&m2) < m1
}

// noDupLayer mirrors one layer of the "no duplicate" bookkeeping structure:
// the points actually used to prune future comparisons (equal points are
// excluded), plus a bucket per mask value recording the first/last position
// of points sharing that mask.
type noDupLayer struct {
	points  []point.Point // mask field here is local to this layer's buckets
	buckets []maskBucket
}

// GenerateSkyLayers partitions points (assumed already in layered sort
// order, see point.OrderByPartition) into incomparability layers.
//
// Points are processed in input order; for each point, layers are scanned
// from L0 upward and the point is placed in the first layer no member of
// which dominates it. Equal points join the same layer as their match but
// are excluded from the no-duplicate bucket structure used for pruning.
func GenerateSkyLayers(points []point.Point) []Layer {
	if len(points) == 0 {
		return nil
	}

	dims := len(points[0].Label)
	maxMask := point.Mask(1)<<uint(dims) - 1

	var layers []Layer
	var noDup []noDupLayer

	for _, current := range points {
		layerNumber := 0
		isDominated := true
		isEqual := false

		for j := range noDup {
			isDominated = false
			for m := point.Mask(0); m <= current.Mask; m++ {
				bucket := noDup[j].buckets[m]
				if bucket.size == 0 {
					continue
				}
				if areIncomparable(m, current.Mask) {
					continue
				}

				localMask := point.DeterminePartition(current.Label, noDup[j].points[bucket.firstPos].Label)
				isDominated = localMask == maxMask
				if isDominated {
					break
				}
				for p := bucket.firstPos; p <= bucket.lastPos; p++ {
					compare := noDup[j].points[p]
					if areIncomparable(compare.Mask, localMask) {
						continue
					}
					switch point.Dominance(compare.Label, current.Label) {
					case point.Dominates:
						isDominated = true
					case point.Equal:
						isEqual = true
					}
					if isDominated || isEqual {
						break
					}
				}
				if isDominated || isEqual {
					break
				}
			}
			if !isDominated || isEqual {
				layerNumber = j
				layers[j].Points = append(layers[j].Points, current)
				break
			}
		}

		if isDominated {
			layerNumber = len(noDup)
			layers = append(layers, Layer{Points: []point.Point{current}})
		}

		if !isEqual {
			updateNoDup(&noDup, current, maxMask, layerNumber)
		}
	}

	return layers
}

// updateNoDup records current in the no-duplicate bookkeeping structure for
// layerNumber, creating a new layer entry if layerNumber is one past the
// last known layer.
func updateNoDup(noDup *[]noDupLayer, current point.Point, maxMask point.Mask, layerNumber int) {
	if layerNumber == len(*noDup) {
		layer := noDupLayer{buckets: make([]maskBucket, maxMask+1)}
		layer.buckets[current.Mask] = maskBucket{size: 1}
		rep := current
		rep.Mask = 0
		layer.points = append(layer.points, rep)
		*noDup = append(*noDup, layer)
		return
	}

	layer := &(*noDup)[layerNumber]
	bucket := &layer.buckets[current.Mask]
	position := len(layer.points)

	entry := current
	if bucket.size == 0 {
		bucket.firstPos = position
		entry.Mask = 0
	} else {
		entry.Mask = point.DeterminePartition(current.Label, layer.points[bucket.firstPos].Label)
	}
	bucket.lastPos = position
	bucket.size++
	layer.points = append(layer.points, entry)
}
