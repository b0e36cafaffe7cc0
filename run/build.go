package run

import (
	"gonum.org/v1/gonum/floats"

	"github.com/opinionmap/voteclust/cluster"
	"github.com/opinionmap/voteclust/metrics"
	"github.com/opinionmap/voteclust/projection"
	"github.com/opinionmap/voteclust/store"
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
	"github.com/opinionmap/voteclust/votematrix"
)

// buildRunData assembles the full set of dependent rows for one run: a
// Projection per voter, a Cluster and Membership set per base and group
// cluster, and a ClusterVotingPattern per (cluster, voted-on item). It
// returns the group Cluster rows separately for the naming hook.
func buildRunData(
	runID string,
	m *votematrix.Matrix,
	itemNames []string,
	rowToVoter []voter.Identity,
	proj *projection.Result,
	base *cluster.Base,
	group *cluster.Group,
	baseToGroup []int,
	epsilon float64,
) (store.RunData, []store.Cluster, error) {
	nVoters := m.NVoters()

	projections := make([]store.Projection, nVoters)
	for i := 0; i < nVoters; i++ {
		projections[i] = store.Projection{
			RunID:      runID,
			Voter:      rowToVoter[i],
			X:          proj.Coordinates[i][0],
			Y:          proj.Coordinates[i][1],
			NVotesCast: m.RowNNZ[i],
		}
	}

	baseMembers := make([][]int, len(base.Centroids))
	for i, b := range base.Labels {
		baseMembers[b] = append(baseMembers[b], i)
	}
	groupMembers := make([][]int, len(group.Centroids))
	for i, g := range group.Labels {
		groupMembers[g] = append(groupMembers[g], i)
	}

	var clusters []store.Cluster
	var memberships []store.Membership
	var patterns []store.ClusterVotingPattern
	var groupClusters []store.Cluster

	for g, members := range groupMembers {
		breakdown, err := metrics.ClusterBreakdown(m, itemNames, epsilon, members)
		if err != nil {
			return store.RunData{}, nil, err
		}
		cl := store.Cluster{
			RunID:     runID,
			Type:      store.ClusterGroup,
			LocalID:   g,
			Size:      len(members),
			CentroidX: group.Centroids[g][0],
			CentroidY: group.Centroids[g][1],
			Consensus: metrics.ClusterConsensus(breakdown),
			Parent:    store.NoParent,
		}
		clusters = append(clusters, cl)
		groupClusters = append(groupClusters, cl)

		for _, row := range members {
			memberships = append(memberships, store.Membership{
				RunID:          runID,
				ClusterType:    store.ClusterGroup,
				ClusterLocalID: g,
				Voter:          rowToVoter[row],
				Distance:       euclidean(proj.Coordinates[row], group.Centroids[g]),
			})
		}
		for _, bd := range breakdown {
			patterns = append(patterns, store.ClusterVotingPattern{
				RunID: runID, ClusterType: store.ClusterGroup, ClusterLocalID: g, Item: bd.Item,
				CountPos: bd.CountPos, CountNeg: bd.CountNeg, CountNeu: bd.CountNeu,
				Consensus: bd.Consensus, Majority: bd.Majority,
			})
		}
	}

	for b, members := range baseMembers {
		breakdown, err := metrics.ClusterBreakdown(m, itemNames, epsilon, members)
		if err != nil {
			return store.RunData{}, nil, err
		}
		clusters = append(clusters, store.Cluster{
			RunID:     runID,
			Type:      store.ClusterBase,
			LocalID:   b,
			Size:      len(members),
			CentroidX: base.Centroids[b][0],
			CentroidY: base.Centroids[b][1],
			Consensus: metrics.ClusterConsensus(breakdown),
			Parent:    baseToGroup[b],
		})

		for _, row := range members {
			memberships = append(memberships, store.Membership{
				RunID:          runID,
				ClusterType:    store.ClusterBase,
				ClusterLocalID: b,
				Voter:          rowToVoter[row],
				Distance:       euclidean(proj.Coordinates[row], base.Centroids[b]),
			})
		}
		for _, bd := range breakdown {
			patterns = append(patterns, store.ClusterVotingPattern{
				RunID: runID, ClusterType: store.ClusterBase, ClusterLocalID: b, Item: bd.Item,
				CountPos: bd.CountPos, CountNeg: bd.CountNeg, CountNeu: bd.CountNeu,
				Consensus: bd.Consensus, Majority: bd.Majority,
			})
		}
	}

	var voterVotes []store.VoterVote
	for row := 0; row < nVoters; row++ {
		present := m.Present[row]
		for col, ok := present.NextSet(0); ok; col, ok = present.NextSet(col + 1) {
			value, _ := m.At(row, int(col))
			voterVotes = append(voterVotes, store.VoterVote{
				RunID: runID,
				Voter: rowToVoter[row],
				Item:  itemNames[int(col)],
				Vote:  vote.Decode(value, epsilon),
			})
		}
	}

	return store.RunData{
		Projections: projections,
		Clusters:    clusters,
		Memberships: memberships,
		Patterns:    patterns,
		VoterVotes:  voterVotes,
	}, groupClusters, nil
}

func euclidean(a, b [2]float64) float64 {
	return floats.Distance(a[:], b[:], 2)
}
