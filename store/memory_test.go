package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

func TestBeginPublishRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	run, err := s.BeginRun(ctx, Parameters{WindowDays: 30, MinVoters: 50})
	require.NoError(t, err)
	require.Equal(t, StatusRunning, run.Status)

	v1 := voter.New(voter.Registered, "1")
	data := RunData{
		Projections: []Projection{{RunID: run.ID, Voter: v1, X: 1, Y: 2, NVotesCast: 3}},
		Clusters:    []Cluster{{RunID: run.ID, Type: ClusterGroup, LocalID: 0, Size: 1, Parent: NoParent}},
		Memberships: []Membership{{RunID: run.ID, ClusterType: ClusterGroup, ClusterLocalID: 0, Voter: v1}},
		Patterns: []ClusterVotingPattern{
			{RunID: run.ID, ClusterType: ClusterGroup, ClusterLocalID: 0, Item: "i1", CountPos: 1, Consensus: 1, Majority: vote.Positive},
		},
	}
	published, err := s.PublishRun(ctx, run.ID, data, RunAggregates{NVoters: 1, NGroups: 2})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, published.Status)

	latest, err := s.LatestCompletedRun(ctx)
	require.NoError(t, err)
	require.Equal(t, run.ID, latest.ID)

	projections, err := s.Projections(ctx, run.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(data.Projections, projections); diff != "" {
		t.Fatalf("projections round-trip mismatch (-want +got):\n%s", diff)
	}

	membership, err := s.VoterMembership(ctx, run.ID, ClusterGroup, v1)
	require.NoError(t, err)
	require.Equal(t, 0, membership.ClusterLocalID)
}

func TestVoterVotesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	run, err := s.BeginRun(ctx, Parameters{})
	require.NoError(t, err)

	v1 := voter.New(voter.Registered, "1")
	v2 := voter.New(voter.Registered, "2")
	data := RunData{
		VoterVotes: []VoterVote{
			{RunID: run.ID, Voter: v1, Item: "i1", Vote: vote.Positive},
			{RunID: run.ID, Voter: v2, Item: "i1", Vote: vote.Negative},
		},
	}
	_, err = s.PublishRun(ctx, run.ID, data, RunAggregates{NVoters: 2})
	require.NoError(t, err)

	votes, err := s.VoterVotes(ctx, run.ID, v1)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, vote.Positive, votes[0].Vote)

	votes, err = s.VoterVotes(ctx, run.ID, voter.New(voter.Registered, "nobody"))
	require.NoError(t, err)
	require.Empty(t, votes)
}

func TestPublishRunRejectsNonRunning(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	run, err := s.BeginRun(ctx, Parameters{})
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID, "boom"))

	_, err = s.PublishRun(ctx, run.ID, RunData{}, RunAggregates{})
	require.ErrorIs(t, err, ErrRunNotRunning)
}

func TestFailRunClearsDependentRows(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	run, err := s.BeginRun(ctx, Parameters{})
	require.NoError(t, err)

	require.NoError(t, s.FailRun(ctx, run.ID, "numerical error"))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, StatusFailed, got.Status)
	require.Equal(t, "numerical error", got.ErrorMessage)

	_, err = s.Projections(ctx, run.ID)
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestLatestCompletedRunWithNoRunsErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.LatestCompletedRun(ctx)
	require.ErrorIs(t, err, ErrNoCompletedRun)
}

func TestPreviousCompletedRunOrdersByCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	r1, err := s.BeginRun(ctx, Parameters{})
	require.NoError(t, err)
	_, err = s.PublishRun(ctx, r1.ID, RunData{}, RunAggregates{})
	require.NoError(t, err)

	r2, err := s.BeginRun(ctx, Parameters{})
	require.NoError(t, err)
	_, err = s.PublishRun(ctx, r2.ID, RunData{}, RunAggregates{})
	require.NoError(t, err)

	prev, err := s.PreviousCompletedRun(ctx, r2.ID)
	require.NoError(t, err)
	require.Equal(t, r1.ID, prev.ID)
}
