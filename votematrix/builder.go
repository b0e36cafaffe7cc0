package votematrix

import (
	"context"
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

// Filter holds the parameters of one matrix-construction pass (spec.md §4.1).
type Filter struct {
	Now              time.Time
	WindowDays       int
	MinVoters        int
	MinVotesPerVoter int
	Epsilon          float64
}

// dedupKey identifies a (voter, item) pair after reconciliation.
type dedupKey struct {
	voter voter.Identity
	item  string
}

// Build reads the vote stream from store, reconciles voter identities,
// drops voters below the minimum-votes threshold, and encodes the
// survivors into a sparse Matrix. It returns ErrInsufficientVoters if
// fewer than Filter.MinVoters voters survive (spec.md §4.1).
func Build(ctx context.Context, store vote.Store, f Filter) (*Matrix, error) {
	window := time.Duration(f.WindowDays) * 24 * time.Hour
	votes, err := store.VotesInWindow(ctx, f.Now, window)
	if err != nil {
		return nil, err
	}

	rawClaims, err := store.Claims(ctx)
	if err != nil {
		return nil, err
	}
	claims := make(voter.Claims, len(rawClaims))
	for session, registeredID := range rawClaims {
		claims[session] = voter.New(voter.Registered, registeredID)
	}

	// Step 2: reconcile identities, then resolve (voter,item) duplicates
	// produced by that substitution: registered-origin wins, else most
	// recent by timestamp (spec.md §4.1 step 2, §3 Vote invariant).
	winners := make(map[dedupKey]vote.Vote, len(votes))
	winnerIsRegisteredOrigin := make(map[dedupKey]bool, len(votes))
	for _, v := range votes {
		resolved := voter.Reconcile(v.Voter, claims)
		key := dedupKey{voter: resolved, item: v.Item}
		isRegisteredOrigin := v.Voter.Kind == voter.Registered

		existing, ok := winners[key]
		if !ok {
			winners[key] = v
			winnerIsRegisteredOrigin[key] = isRegisteredOrigin
			continue
		}
		switch {
		case isRegisteredOrigin && !winnerIsRegisteredOrigin[key]:
			winners[key] = v
			winnerIsRegisteredOrigin[key] = true
		case isRegisteredOrigin == winnerIsRegisteredOrigin[key] && v.Timestamp.After(existing.Timestamp):
			winners[key] = v
		}
	}

	// Step 3: count surviving votes per voter.
	votesByVoter := make(map[voter.Identity][]vote.Vote)
	for key, v := range winners {
		votesByVoter[key.voter] = append(votesByVoter[key.voter], v)
	}
	for id, vs := range votesByVoter {
		if len(vs) < f.MinVotesPerVoter {
			delete(votesByVoter, id)
		}
	}
	if len(votesByVoter) < f.MinVoters {
		return nil, ErrInsufficientVoters
	}

	// Step 4: build deterministic row/col index maps (stable by identity
	// key / item id) and the sparse matrix.
	voterIDs := make([]voter.Identity, 0, len(votesByVoter))
	for id := range votesByVoter {
		voterIDs = append(voterIDs, id)
	}
	sort.Slice(voterIDs, func(i, j int) bool { return voterIDs[i].Key() < voterIDs[j].Key() })

	itemSet := make(map[string]struct{})
	for _, vs := range votesByVoter {
		for _, v := range vs {
			itemSet[v.Item] = struct{}{}
		}
	}
	items := make([]string, 0, len(itemSet))
	for item := range itemSet {
		items = append(items, item)
	}
	sort.Strings(items)

	m := &Matrix{
		Values:   make([]map[int]float64, len(voterIDs)),
		Present:  make([]*bitset.BitSet, len(voterIDs)),
		RowIndex: make(map[voter.Identity]int, len(voterIDs)),
		ColIndex: make(map[string]int, len(items)),
		RowNNZ:   make([]int, len(voterIDs)),
	}
	for row, id := range voterIDs {
		m.RowIndex[id] = row
		m.Values[row] = make(map[int]float64, len(votesByVoter[id]))
		m.Present[row] = bitset.New(uint(len(items)))
	}
	for col, item := range items {
		m.ColIndex[item] = col
	}
	for row, id := range voterIDs {
		for _, v := range votesByVoter[id] {
			col := m.ColIndex[v.Item]
			m.set(row, col, vote.Encode(v.Opinion, f.Epsilon))
		}
		m.RowNNZ[row] = len(votesByVoter[id])
	}

	return m, nil
}
