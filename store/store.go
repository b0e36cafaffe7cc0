package store

import (
	"context"

	"github.com/opinionmap/voteclust/voter"
)

// Store is the persistence boundary the Run Coordinator (package run)
// publishes through and the Query API (package query) reads from.
//
// BeginRun and PublishRun/FailRun bracket one pipeline execution: no
// dependent row is visible to readers until PublishRun transitions the
// run to completed (spec.md §4.6 "atomic publication").
type Store interface {
	BeginRun(ctx context.Context, params Parameters) (*Run, error)
	PublishRun(ctx context.Context, runID string, data RunData, aggregates RunAggregates) (*Run, error)
	FailRun(ctx context.Context, runID string, reason string) error

	GetRun(ctx context.Context, runID string) (*Run, error)
	LatestCompletedRun(ctx context.Context) (*Run, error)
	PreviousCompletedRun(ctx context.Context, runID string) (*Run, error)

	Projections(ctx context.Context, runID string) ([]Projection, error)
	Clusters(ctx context.Context, runID string, clusterType ClusterType) ([]Cluster, error)
	Memberships(ctx context.Context, runID string, clusterType ClusterType) ([]Membership, error)
	VoterMembership(ctx context.Context, runID string, clusterType ClusterType, v voter.Identity) (*Membership, error)
	Patterns(ctx context.Context, runID string, clusterType ClusterType, clusterLocalID int) ([]ClusterVotingPattern, error)
	VoterVotes(ctx context.Context, runID string, v voter.Identity) ([]VoterVote, error)

	SaveLineage(ctx context.Context, rows []Lineage) error
	Lineage(ctx context.Context, fromRunID, toRunID string) ([]Lineage, error)
	RecentCompletedRuns(ctx context.Context, n int) ([]*Run, error)
}

// RunAggregates carries the scalar summary fields computed over the
// course of a run, finalized at PublishRun time.
type RunAggregates struct {
	NVoters       int
	NItems        int
	NBaseClusters int
	NGroups       int
	Silhouette    float64
	ComputationMs int64
}
