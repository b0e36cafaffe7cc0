package lineage

import (
	"github.com/opinionmap/voteclust/store"
	"github.com/opinionmap/voteclust/voter"
)

const (
	continuationThreshold = 0.8
	splitThreshold        = 0.3
	mergeThreshold        = 0.3
	minOverlapForMinor    = 5
)

// Compute classifies every non-trivial (old group, new group) pair found
// in oldMemberships/newMemberships (spec.md §4.7). Both slices must
// already be filtered to group-type memberships of a single run.
func Compute(oldRunID, newRunID string, oldMemberships, newMemberships []store.Membership) []store.Lineage {
	oldGroups := groupVoters(oldMemberships)
	newGroups := groupVoters(newMemberships)

	var rows []store.Lineage
	for oldID, oldSet := range oldGroups {
		for newID, newSet := range newGroups {
			overlap := intersectionSize(oldSet, newSet)
			pctFrom := safeDiv(overlap, len(oldSet))
			pctTo := safeDiv(overlap, len(newSet))

			kind, ok := classify(pctFrom, pctTo, overlap)
			if !ok {
				continue
			}

			rows = append(rows, store.Lineage{
				FromRunID:          oldRunID,
				ToRunID:            newRunID,
				FromClusterLocalID: oldID,
				ToClusterLocalID:   newID,
				OverlapCount:       overlap,
				PctFrom:            pctFrom,
				PctTo:              pctTo,
				Kind:               kind,
			})
		}
	}
	return rows
}

func classify(pctFrom, pctTo float64, overlap int) (store.LineageKind, bool) {
	switch {
	case pctFrom > continuationThreshold && pctTo > continuationThreshold:
		return store.LineageContinuation, true
	case pctFrom > splitThreshold:
		return store.LineageSplit, true
	case pctTo > mergeThreshold:
		return store.LineageMerge, true
	case overlap > minOverlapForMinor:
		return store.LineageMinor, true
	default:
		return "", false
	}
}

func groupVoters(memberships []store.Membership) map[int]map[voter.Identity]struct{} {
	groups := make(map[int]map[voter.Identity]struct{})
	for _, m := range memberships {
		set, ok := groups[m.ClusterLocalID]
		if !ok {
			set = make(map[voter.Identity]struct{})
			groups[m.ClusterLocalID] = set
		}
		set[m.Voter] = struct{}{}
	}
	return groups
}

func intersectionSize(a, b map[voter.Identity]struct{}) int {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	var n int
	for id := range small {
		if _, ok := big[id]; ok {
			n++
		}
	}
	return n
}

func safeDiv(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
