package skyline

import (
	"github.com/nkiran-dev/skycore/dominance"
	"github.com/nkiran-dev/skycore/point"
)

// postprocess repairs the one false-positive case the layered sort order
// cannot rule out by construction: two distinct vertices that carry an
// equal label, each heading its own batch of candidate groups. Those
// batches sort as adjacent (since "equal" sorts together), but the
// one-sided dominance checks used while building the skyline only ever
// compared a candidate to groups headed by lower-id vertices — never to
// a same-label sibling batch headed by a vertex appearing later in
// sweep order but with an identical label.
//
// It assumes groups sharing the same first vertex id already appear
// contiguously (true of both drivers' output), and truncates in place:
// a three-pointer sweep where first marks the end of the confirmed
// prefix, curr is the candidate under test, and next scans forward
// while its first member's label equals curr's.
func postprocess(groups [][]int, labels []point.Label) [][]int {
	first := 0

	for curr := 0; curr < len(groups); curr++ {
		isSkyline := true

		for next := curr + 1; next < len(groups); next++ {
			currFirst, nextFirst := groups[curr][0], groups[next][0]
			if point.Dominance(labels[nextFirst], labels[currFirst]) != point.Equal {
				break
			}
			if dominance.GroupDominates(groups[next], groups[curr], labels) {
				isSkyline = false
				break
			}
		}

		if isSkyline {
			if first != curr {
				groups[first] = groups[curr]
			}
			first++
		}
	}

	return groups[:first]
}
