package run

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opinionmap/voteclust/config"
	"github.com/opinionmap/voteclust/store"
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

type fakeVoteStore struct {
	votes []vote.Vote
}

func (f *fakeVoteStore) VotesInWindow(ctx context.Context, now time.Time, window time.Duration) ([]vote.Vote, error) {
	return f.votes, nil
}
func (f *fakeVoteStore) Claims(ctx context.Context) (map[string]string, error) { return nil, nil }

func itoa(i int) string {
	digits := "0123456789"
	if i == 0 {
		return "0"
	}
	var buf []byte
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return string(buf)
}

func trivialSeparationVotes(now time.Time) []vote.Vote {
	var votes []vote.Vote
	for i := 0; i < 20; i++ {
		id := voter.New(voter.Registered, "a"+itoa(i))
		votes = append(votes,
			vote.Vote{Voter: id, Item: "i1", Opinion: vote.Positive, Timestamp: now},
			vote.Vote{Voter: id, Item: "i2", Opinion: vote.Negative, Timestamp: now},
		)
	}
	for i := 0; i < 20; i++ {
		id := voter.New(voter.Registered, "b"+itoa(i))
		votes = append(votes,
			vote.Vote{Voter: id, Item: "i1", Opinion: vote.Negative, Timestamp: now},
			vote.Vote{Voter: id, Item: "i2", Opinion: vote.Positive, Timestamp: now},
		)
	}
	return votes
}

func TestCoordinatorRunScenarioA(t *testing.T) {
	now := time.Now()
	voteStore := &fakeVoteStore{votes: trivialSeparationVotes(now)}
	st := store.NewMemoryStore()

	coord := New(voteStore, st, 30*time.Minute)
	coord.Now = func() time.Time { return now }

	params := config.Defaults()
	params.MinVoters = 20
	params.MinVotesPerVoter = 1
	params.Seed = 42

	published, err := coord.Run(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, store.StatusCompleted, published.Status)
	require.Equal(t, 2, published.NGroups)
	require.Equal(t, 40, published.NVoters)
	require.Greater(t, published.Silhouette, 0.7)

	groups, err := st.Clusters(context.Background(), published.ID, store.ClusterGroup)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	for _, g := range groups {
		require.InDelta(t, 1.0, g.Consensus, 1e-9)
	}
}

func TestCoordinatorRunInsufficientVoters(t *testing.T) {
	now := time.Now()
	voteStore := &fakeVoteStore{votes: trivialSeparationVotes(now)[:4]} // only 2 voters worth
	st := store.NewMemoryStore()

	coord := New(voteStore, st, 30*time.Minute)
	coord.Now = func() time.Time { return now }

	params := config.Defaults()
	params.MinVoters = 20
	params.MinVotesPerVoter = 1

	_, err := coord.Run(context.Background(), params)
	require.Error(t, err)

	var runErr *Error
	require.ErrorAs(t, err, &runErr)
	require.Equal(t, KindInsufficientVoters, runErr.Kind)

	_, err = st.LatestCompletedRun(context.Background())
	require.ErrorIs(t, err, store.ErrNoCompletedRun)
}

func TestCoordinatorRunAlreadyRunning(t *testing.T) {
	now := time.Now()
	voteStore := &fakeVoteStore{votes: trivialSeparationVotes(now)}
	st := store.NewMemoryStore()

	coord := New(voteStore, st, 30*time.Minute)
	require.True(t, coord.Lease.TryAcquire())
	defer coord.Lease.Release()

	params := config.Defaults()
	params.MinVoters = 20
	params.MinVotesPerVoter = 1

	_, err := coord.Run(context.Background(), params)
	require.Error(t, err)

	var runErr *Error
	require.ErrorAs(t, err, &runErr)
	require.Equal(t, KindAlreadyRunning, runErr.Kind)
}
