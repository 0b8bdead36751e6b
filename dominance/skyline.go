package dominance

import "github.com/nkiran-dev/skycore/point"

// IsDominatedBySkyline reports whether any already-accepted skyline group
// dominates groupToTest.
func IsDominatedBySkyline(groupToTest []int, skyline [][]int, labels []point.Label) bool {
	for _, skylineGroup := range skyline {
		if GroupDominates(skylineGroup, groupToTest, labels) {
			return true
		}
	}
	return false
}

// IsDominatedByCandidates reports whether any earlier candidate at
// candidates[i], i < index, still believed to be on the skyline
// (isSkyline[i]), dominates candidates[index]. Layered sort order
// guarantees a later candidate can never dominate an earlier one, so only
// the prefix needs checking.
func IsDominatedByCandidates(index int, candidates [][]int, isSkyline []bool, labels []point.Label) bool {
	for i := 0; i < index; i++ {
		if isSkyline[i] && GroupDominates(candidates[i], candidates[index], labels) {
			return true
		}
	}
	return false
}

// CanTerminate reports whether some already-discovered skyline group's
// representative dominates layerRepresentative, the best virtual point of
// the next sky-layer to examine. If so, no group rooted in that layer or
// any later one can join the skyline, and the outer driver may stop.
func CanTerminate(skylineRepresentatives []point.Label, layerRepresentative point.Label) bool {
	for _, rep := range skylineRepresentatives {
		if point.Dominance(rep, layerRepresentative) == point.Dominates {
			return true
		}
	}
	return false
}
