package run

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignGroupsToBasePlurality(t *testing.T) {
	voterBase := []int{0, 0, 0, 1, 1}
	voterGroup := []int{5, 5, 9, 2, 2}
	got := assignGroupsToBase(voterBase, voterGroup, 2)
	require.Equal(t, []int{5, 2}, got)
}

func TestAssignGroupsToBaseTieBreaksLowestID(t *testing.T) {
	voterBase := []int{0, 0}
	voterGroup := []int{3, 1}
	got := assignGroupsToBase(voterBase, voterGroup, 1)
	require.Equal(t, []int{1}, got)
}
