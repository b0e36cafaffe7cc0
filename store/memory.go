package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/opinionmap/voteclust/voter"
)

// MemoryStore is an in-process Store backed by maps guarded by a mutex.
// It is the reference implementation used by tests and by deployments
// that accept losing run history on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	data    map[string]RunData
	lineage map[string][]Lineage // keyed by fromRunID+"->"+toRunID
	order   []string             // run ids in creation order
	seq     atomic.Int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:    make(map[string]*Run),
		data:    make(map[string]RunData),
		lineage: make(map[string][]Lineage),
	}
}

func (s *MemoryStore) nextID() string {
	n := s.seq.Add(1)
	return fmt.Sprintf("run-%d-%d", time.Now().UnixNano(), n)
}

func (s *MemoryStore) BeginRun(ctx context.Context, params Parameters) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := &Run{
		ID:         s.nextID(),
		CreatedAt:  time.Now(),
		Status:     StatusRunning,
		Parameters: params,
	}
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	return cloneRun(run), nil
}

func (s *MemoryStore) PublishRun(ctx context.Context, runID string, data RunData, agg RunAggregates) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "publish run %s", runID)
	}
	if run.Status != StatusRunning {
		return nil, errors.Wrapf(ErrRunNotRunning, "publish run %s", runID)
	}

	// Stage-then-swap: data is fully built by the caller before this
	// call; the only state mutation is this single map write plus the
	// status flip, so no reader ever observes a partial run.
	s.data[runID] = data
	run.NVoters = agg.NVoters
	run.NItems = agg.NItems
	run.NBaseClusters = agg.NBaseClusters
	run.NGroups = agg.NGroups
	run.Silhouette = agg.Silhouette
	run.ComputationMs = agg.ComputationMs
	run.CompletedAt = time.Now()
	run.Status = StatusCompleted

	return cloneRun(run), nil
}

func (s *MemoryStore) FailRun(ctx context.Context, runID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return errors.Wrapf(ErrRunNotFound, "fail run %s", runID)
	}
	if run.Status != StatusRunning {
		return errors.Wrapf(ErrRunNotRunning, "fail run %s", runID)
	}
	run.Status = StatusFailed
	run.ErrorMessage = reason
	delete(s.data, runID)
	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "get run %s", runID)
	}
	return cloneRun(run), nil
}

func (s *MemoryStore) LatestCompletedRun(ctx context.Context) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *Run
	for _, id := range s.order {
		run := s.runs[id]
		if run.Status != StatusCompleted {
			continue
		}
		if latest == nil || run.CreatedAt.After(latest.CreatedAt) {
			latest = run
		}
	}
	if latest == nil {
		return nil, ErrNoCompletedRun
	}
	return cloneRun(latest), nil
}

// PreviousCompletedRun returns the most recent completed run strictly
// before the given run's created_at (spec.md §4.7).
func (s *MemoryStore) PreviousCompletedRun(ctx context.Context, runID string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.runs[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "previous completed run for %s", runID)
	}

	var best *Run
	for _, id := range s.order {
		run := s.runs[id]
		if run.Status != StatusCompleted || !run.CreatedAt.Before(current.CreatedAt) {
			continue
		}
		if best == nil || run.CreatedAt.After(best.CreatedAt) {
			best = run
		}
	}
	if best == nil {
		return nil, ErrNoCompletedRun
	}
	return cloneRun(best), nil
}

func (s *MemoryStore) RecentCompletedRuns(ctx context.Context, n int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var completed []*Run
	for _, id := range s.order {
		run := s.runs[id]
		if run.Status == StatusCompleted {
			completed = append(completed, run)
		}
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i].CreatedAt.After(completed[j].CreatedAt) })
	if n < len(completed) {
		completed = completed[:n]
	}
	out := make([]*Run, len(completed))
	for i, r := range completed {
		out[i] = cloneRun(r)
	}
	return out, nil
}

func (s *MemoryStore) Projections(ctx context.Context, runID string) ([]Projection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "projections for %s", runID)
	}
	out := make([]Projection, len(data.Projections))
	copy(out, data.Projections)
	return out, nil
}

func (s *MemoryStore) Clusters(ctx context.Context, runID string, clusterType ClusterType) ([]Cluster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "clusters for %s", runID)
	}
	var out []Cluster
	for _, c := range data.Clusters {
		if c.Type == clusterType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) Memberships(ctx context.Context, runID string, clusterType ClusterType) ([]Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "memberships for %s", runID)
	}
	var out []Membership
	for _, m := range data.Memberships {
		if m.ClusterType == clusterType {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryStore) VoterMembership(ctx context.Context, runID string, clusterType ClusterType, v voter.Identity) (*Membership, error) {
	memberships, err := s.Memberships(ctx, runID, clusterType)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		if m.Voter == v {
			cp := m
			return &cp, nil
		}
	}
	return nil, errors.Wrapf(ErrMembershipNotFound, "voter %s in run %s", v.Key(), runID)
}

func (s *MemoryStore) Patterns(ctx context.Context, runID string, clusterType ClusterType, clusterLocalID int) ([]ClusterVotingPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "patterns for %s", runID)
	}
	var out []ClusterVotingPattern
	for _, p := range data.Patterns {
		if p.ClusterType == clusterType && p.ClusterLocalID == clusterLocalID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Consensus > out[j].Consensus })
	return out, nil
}

func (s *MemoryStore) VoterVotes(ctx context.Context, runID string, v voter.Identity) ([]VoterVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "voter votes for %s", runID)
	}
	var out []VoterVote
	for _, vv := range data.VoterVotes {
		if vv.Voter == v {
			out = append(out, vv)
		}
	}
	return out, nil
}

func lineageKey(fromRunID, toRunID string) string { return fromRunID + "->" + toRunID }

func (s *MemoryStore) SaveLineage(ctx context.Context, rows []Lineage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		key := lineageKey(row.FromRunID, row.ToRunID)
		s.lineage[key] = append(s.lineage[key], row)
	}
	return nil
}

func (s *MemoryStore) Lineage(ctx context.Context, fromRunID, toRunID string) ([]Lineage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.lineage[lineageKey(fromRunID, toRunID)]
	out := make([]Lineage, len(rows))
	copy(out, rows)
	return out, nil
}

func cloneRun(r *Run) *Run {
	cp := *r
	return &cp
}
