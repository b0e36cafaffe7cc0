package run

import "sort"

// assignGroupsToBase maps each base cluster to the group its members
// belong to by plurality vote, ties broken by the lowest group local_id
// (spec.md §4.4 "group assignment of a base cluster").
func assignGroupsToBase(voterBase, voterGroup []int, nBase int) []int {
	tally := make([]map[int]int, nBase)
	for i := range tally {
		tally[i] = make(map[int]int)
	}
	for i, b := range voterBase {
		tally[b][voterGroup[i]]++
	}

	result := make([]int, nBase)
	for b, counts := range tally {
		groups := make([]int, 0, len(counts))
		for g := range counts {
			groups = append(groups, g)
		}
		sort.Ints(groups)

		best := 0
		bestCount := -1
		for _, g := range groups {
			if counts[g] > bestCount {
				bestCount = counts[g]
				best = g
			}
		}
		result[b] = best
	}
	return result
}
