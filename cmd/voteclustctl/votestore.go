package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

// fileVoteStore is a minimal vote.Store backed by a JSON snapshot. The
// real Vote Store (C1) lives outside the clustering core; this adapter
// exists so the trigger command is runnable standalone against a file
// dropped by whatever system owns votes in a given deployment.
type fileVoteStore struct {
	votes  []vote.Vote
	claims map[string]string
}

type fileVote struct {
	VoterKind string    `json:"voter_kind"`
	VoterID   string    `json:"voter_id"`
	Item      string    `json:"item"`
	Opinion   string    `json:"opinion"`
	Timestamp time.Time `json:"timestamp"`
}

type fileSnapshot struct {
	Votes  []fileVote        `json:"votes"`
	Claims map[string]string `json:"claims"`
}

func newFileVoteStore(path string) (*fileVoteStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read votes file %s: %w", path, err)
	}

	var snapshot fileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse votes file %s: %w", path, err)
	}

	votes := make([]vote.Vote, 0, len(snapshot.Votes))
	for _, fv := range snapshot.Votes {
		kind, err := parseVoterKind(fv.VoterKind)
		if err != nil {
			return nil, err
		}
		opinion := vote.Opinion(fv.Opinion[0])
		if !opinion.Valid() {
			return nil, fmt.Errorf("invalid opinion %q for voter %s/%s", fv.Opinion, fv.VoterKind, fv.VoterID)
		}
		votes = append(votes, vote.Vote{
			Voter:     voter.New(kind, fv.VoterID),
			Item:      fv.Item,
			Opinion:   opinion,
			Timestamp: fv.Timestamp,
		})
	}

	return &fileVoteStore{votes: votes, claims: snapshot.Claims}, nil
}

func parseVoterKind(s string) (voter.Kind, error) {
	switch s {
	case "registered":
		return voter.Registered, nil
	case "session":
		return voter.Session, nil
	default:
		return 0, fmt.Errorf("unknown voter_kind %q (want \"registered\" or \"session\")", s)
	}
}

// VotesInWindow returns every vote with Timestamp in (now-window, now].
func (f *fileVoteStore) VotesInWindow(_ context.Context, now time.Time, window time.Duration) ([]vote.Vote, error) {
	cutoff := now.Add(-window)
	var result []vote.Vote
	for _, v := range f.votes {
		if v.Timestamp.After(cutoff) && !v.Timestamp.After(now) {
			result = append(result, v)
		}
	}
	return result, nil
}

// Claims returns the session-to-registered identity map loaded from the
// snapshot's "claims" object.
func (f *fileVoteStore) Claims(_ context.Context) (map[string]string, error) {
	return f.claims, nil
}
