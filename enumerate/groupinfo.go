package enumerate

import "github.com/nkiran-dev/skycore/topo"

// GroupInfo carries a candidate group under construction between
// recursive calls: its members so far, a per-member count of the other
// group members it is not adjacent to (set for a new member from the
// earlier ones, then raised by each later non-adjacent addition), and the tailset of
// vertices still eligible to extend the group.
type GroupInfo struct {
	Group                  []int
	MissedConnectionsCount []int
	Tailset                []int
}

// getNewGroupInfo produces the GroupInfo for the next level of recursion
// after accepting newNode into the group.
//
// For every existing member not among newNode's neighbors, its missed
// count increments; once a member's missed count reaches
// maxMissedConnections it can no longer help complete the group, so the
// tailset is pruned to that member's own neighborhood. If the tailset
// becomes too small to fill the remaining group slots, the branch is
// dead and an empty tailset is returned immediately.
func getNewGroupInfo(group []int, missed []int, tailsetRemainder []int, neighbors []int, edges [][]int, newNode, maxMissedConnections, groupSize int) GroupInfo {
	newGroup := append([]int(nil), group...)
	newMissed := append([]int(nil), missed...)
	newTailset := append([]int(nil), tailsetRemainder...)

	n := len(group)
	neighborIndex := 0

	for groupIndex := 0; groupIndex < n; groupIndex++ {
		if neighborIndex < len(neighbors) && group[groupIndex] == neighbors[neighborIndex] {
			neighborIndex++
			continue
		}

		newMissed[groupIndex]++
		if newMissed[groupIndex] == maxMissedConnections {
			newTailset = topo.Intersect(topo.Reverse(edges[newGroup[groupIndex]]), newTailset)
			if len(newTailset)+n+1 < groupSize {
				return GroupInfo{Group: newGroup, MissedConnectionsCount: newMissed, Tailset: nil}
			}
		}
	}

	missedForNewNode := n - len(neighbors)
	newGroup = append(newGroup, newNode)
	newMissed = append(newMissed, missedForNewNode)
	if missedForNewNode == maxMissedConnections {
		newTailset = topo.Intersect(topo.Reverse(edges[newNode]), newTailset)
	}

	return GroupInfo{Group: newGroup, MissedConnectionsCount: newMissed, Tailset: newTailset}
}
