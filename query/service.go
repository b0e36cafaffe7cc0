package query

import (
	"context"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/opinionmap/voteclust/store"
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

// Service answers the Query API contract of spec.md §4.8 against a
// Store, caching per-run results since completed runs never change.
type Service struct {
	store store.Store
	cache *ristretto.Cache[string, *RunView]
}

// NewService builds a Service with a small ristretto cache sized for a
// modest number of recent, frequently-polled runs.
func NewService(st store.Store) (*Service, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *RunView]{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Service{store: st, cache: cache}, nil
}

// Close releases the Service's cache resources.
func (s *Service) Close() { s.cache.Close() }

// LatestRun returns the most recent completed run, its voter projections,
// and its group clusters (spec.md §4.8 "Latest run"), cached by run id.
func (s *Service) LatestRun(ctx context.Context) (*RunView, error) {
	run, err := s.store.LatestCompletedRun(ctx)
	if err != nil {
		return nil, err
	}
	return s.runView(ctx, run)
}

func (s *Service) runView(ctx context.Context, run *store.Run) (*RunView, error) {
	if cached, ok := s.cache.Get(run.ID); ok {
		return cached, nil
	}

	projections, err := s.store.Projections(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	groups, err := s.store.Clusters(ctx, run.ID, store.ClusterGroup)
	if err != nil {
		return nil, err
	}

	view := &RunView{Run: run, Projections: projections, Groups: groups}
	s.cache.Set(run.ID, view, int64(len(projections)+len(groups)+1))
	s.cache.Wait()
	return view, nil
}

// VoterBubble returns v's group cluster in the latest completed run, or
// ErrNoBubble if v has no membership there (spec.md §4.8 "Voter bubble").
func (s *Service) VoterBubble(ctx context.Context, v voter.Identity) (*store.Cluster, error) {
	run, err := s.store.LatestCompletedRun(ctx)
	if err != nil {
		return nil, err
	}

	membership, err := s.store.VoterMembership(ctx, run.ID, store.ClusterGroup, v)
	if err != nil {
		return nil, ErrNoBubble
	}

	groups, err := s.store.Clusters(ctx, run.ID, store.ClusterGroup)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].LocalID == membership.ClusterLocalID {
			return &groups[i], nil
		}
	}
	return nil, ErrNoBubble
}

// VoterSimilarity returns the fraction of co-voted items on which a and b's
// opinions in the latest completed run match exactly (spec.md §4.5, §7),
// computed from each voter's persisted decoded vote vector rather than the
// pipeline's ephemeral vote matrix.
func (s *Service) VoterSimilarity(ctx context.Context, a, b voter.Identity) (float64, error) {
	run, err := s.store.LatestCompletedRun(ctx)
	if err != nil {
		return 0, err
	}

	votesA, err := s.store.VoterVotes(ctx, run.ID, a)
	if err != nil {
		return 0, err
	}
	votesB, err := s.store.VoterVotes(ctx, run.ID, b)
	if err != nil {
		return 0, err
	}

	byItem := make(map[string]vote.Opinion, len(votesB))
	for _, vv := range votesB {
		byItem[vv.Item] = vv.Vote
	}

	var common, matches int
	for _, vv := range votesA {
		ob, ok := byItem[vv.Item]
		if !ok {
			continue
		}
		common++
		if vv.Vote == ob {
			matches++
		}
	}
	if common == 0 {
		return 0, ErrNoSharedVotes
	}
	return float64(matches) / float64(common), nil
}

// ClusterPatterns returns a cluster's per-item voting patterns ordered by
// descending consensus (spec.md §4.8 "Cluster patterns").
func (s *Service) ClusterPatterns(ctx context.Context, runID string, clusterType store.ClusterType, clusterLocalID int) ([]store.ClusterVotingPattern, error) {
	return s.store.Patterns(ctx, runID, clusterType, clusterLocalID)
}

// LineageWindow returns the Lineage sets between each of the last n
// completed runs and its successor (spec.md §4.8 "Lineage window").
func (s *Service) LineageWindow(ctx context.Context, n int) ([]LineagePair, error) {
	runs, err := s.store.RecentCompletedRuns(ctx, n+1)
	if err != nil {
		return nil, err
	}

	// RecentCompletedRuns returns newest-first; walk oldest-to-newest to
	// pair each run with its immediate successor.
	var pairs []LineagePair
	for i := len(runs) - 1; i > 0; i-- {
		from, to := runs[i], runs[i-1]
		rows, err := s.store.Lineage(ctx, from.ID, to.ID)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, LineagePair{FromRun: from, ToRun: to, Rows: rows})
	}
	return pairs, nil
}
