package projection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
	"github.com/opinionmap/voteclust/votematrix"
)

type fakeStore struct {
	votes []vote.Vote
}

func (f *fakeStore) VotesInWindow(context.Context, time.Time, time.Duration) ([]vote.Vote, error) {
	return f.votes, nil
}
func (f *fakeStore) Claims(context.Context) (map[string]string, error) { return nil, nil }

func buildTrivialMatrix(t *testing.T) *votematrix.Matrix {
	t.Helper()
	now := time.Now()
	var votes []vote.Vote
	for i := 0; i < 20; i++ {
		id := voter.New(voter.Registered, itoa(i))
		votes = append(votes,
			vote.Vote{Voter: id, Item: "i1", Opinion: vote.Positive, Timestamp: now},
			vote.Vote{Voter: id, Item: "i2", Opinion: vote.Negative, Timestamp: now},
		)
	}
	for i := 20; i < 40; i++ {
		id := voter.New(voter.Registered, itoa(i))
		votes = append(votes,
			vote.Vote{Voter: id, Item: "i1", Opinion: vote.Negative, Timestamp: now},
			vote.Vote{Voter: id, Item: "i2", Opinion: vote.Positive, Timestamp: now},
		)
	}
	m, err := votematrix.Build(context.Background(), &fakeStore{votes: votes}, votematrix.Filter{
		Now: now, WindowDays: 30, MinVoters: 20, MinVotesPerVoter: 1, Epsilon: vote.DefaultEpsilon,
	})
	require.NoError(t, err)
	return m
}

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

func TestComputeProducesFiniteCoordinates(t *testing.T) {
	m := buildTrivialMatrix(t)
	result, err := Compute(m, vote.DefaultEpsilon)
	require.NoError(t, err)
	require.Len(t, result.Coordinates, m.NVoters())
	for _, c := range result.Coordinates {
		require.False(t, isNaNOrInf(c[0]))
		require.False(t, isNaNOrInf(c[1]))
	}
}

func TestComputeNeutralOnlyVoterProjectsFinite(t *testing.T) {
	now := time.Now()
	var votes []vote.Vote
	for i := 0; i < 25; i++ {
		id := voter.New(voter.Registered, itoa(i))
		votes = append(votes, vote.Vote{Voter: id, Item: "i1", Opinion: vote.Neutral, Timestamp: now})
		votes = append(votes, vote.Vote{Voter: id, Item: "i2", Opinion: vote.Positive, Timestamp: now})
	}
	m, err := votematrix.Build(context.Background(), &fakeStore{votes: votes}, votematrix.Filter{
		Now: now, WindowDays: 30, MinVoters: 20, MinVotesPerVoter: 1, Epsilon: vote.DefaultEpsilon,
	})
	require.NoError(t, err)

	result, err := Compute(m, vote.DefaultEpsilon)
	require.NoError(t, err)
	for _, c := range result.Coordinates {
		require.False(t, isNaNOrInf(c[0]))
		require.False(t, isNaNOrInf(c[1]))
	}
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}
