package dominance

import (
	"errors"

	"github.com/nkiran-dev/skycore/point"
)

// ErrGroupSizeMismatch is the panic value when GroupDominates is called
// with groups of different sizes; this module only ever compares equal-g
// groups, so a mismatch indicates a caller bug, not recoverable input.
var ErrGroupSizeMismatch = errors.New("dominance: groups must be the same size")

// GroupDominates performs a one-sided dominance test between two
// equal-size groups of vertices, identified by index into labels.
//
// Groups are multisets. Dominance is evaluated over the bag difference of
// the two groups: remove their common members, then group1 dominates
// group2 iff every remaining member of group2 is dominated by some
// remaining member of group1. Equal groups (empty bag difference) never
// dominate each other, which the bool return distinguishes from the
// dominates case.
//
// group1 and group2 should each be sorted so that no member at index i
// can be dominated by a member at index i+c for c >= 0; both this
// package's callers and the enumerator maintain that ordering.
func GroupDominates(group1, group2 []int, labels []point.Label) bool {
	if len(group1) != len(group2) {
		panic(ErrGroupSizeMismatch)
	}

	matchedInGroup1 := make([]bool, len(group1))
	groupsNotEqual := false

	for _, v2 := range group2 {
		dominatedOrEqual := false

		for i1, v1 := range group1 {
			if matchedInGroup1[i1] {
				continue
			}

			switch point.Dominance(labels[v1], labels[v2]) {
			case point.Equal:
				matchedInGroup1[i1] = true
				dominatedOrEqual = true
			case point.Dominates:
				groupsNotEqual = true
				dominatedOrEqual = true
			}
			if dominatedOrEqual {
				break
			}
		}

		if !dominatedOrEqual {
			return false
		}
	}

	return groupsNotEqual
}
