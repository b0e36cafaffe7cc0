package store

import (
	"time"

	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
)

// Status is a Run's lifecycle state (spec.md §4.6).
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Parameters are the inputs a Run was computed with, stored for
// reproducibility (spec.md §4.6).
type Parameters struct {
	WindowDays       int
	MinVoters        int
	MinVotesPerVoter int
	NeutralEpsilon   float64
	KBase            int
	KGroupMin        int
	KGroupMax        int
}

// Run is one immutable execution of the clustering pipeline.
type Run struct {
	ID            string
	CreatedAt     time.Time
	CompletedAt   time.Time
	Status        Status
	Parameters    Parameters
	NVoters       int
	NItems        int
	NBaseClusters int
	NGroups       int
	Silhouette    float64
	ComputationMs int64
	ErrorMessage  string
}

// Projection is one voter's 2D coordinate within a Run.
type Projection struct {
	RunID      string
	Voter      voter.Identity
	X, Y       float64
	NVotesCast int
}

// ClusterType distinguishes the fine base clustering from the reduced
// group ("bubble") clustering.
type ClusterType string

const (
	ClusterBase  ClusterType = "base"
	ClusterGroup ClusterType = "group"
)

// Cluster is one base or group cluster within a Run. Parent is the group
// local_id a base cluster was aggregated into; it is -1 for group
// clusters and for any base cluster not yet assigned (which should not
// occur in a completed Run).
type Cluster struct {
	RunID      string
	Type       ClusterType
	LocalID    int
	Size       int
	CentroidX  float64
	CentroidY  float64
	Consensus  float64
	Parent     int
	Name       string // optional naming label; run.Coordinator does not set it
	NamingDesc string
}

// NoParent marks a Cluster.Parent with no group assignment.
const NoParent = -1

// Membership ties one voter to one cluster of one type within a Run.
type Membership struct {
	RunID          string
	ClusterType    ClusterType
	ClusterLocalID int
	Voter          voter.Identity
	Distance       float64
}

// ClusterVotingPattern is the aggregate vote breakdown of one cluster on
// one item.
type ClusterVotingPattern struct {
	RunID          string
	ClusterType    ClusterType
	ClusterLocalID int
	Item           string
	CountPos       int
	CountNeg       int
	CountNeu       int
	Consensus      float64
	Majority       vote.Opinion
}

// LineageKind classifies the relationship between a previous-Run cluster
// and a current-Run cluster (spec.md §4.7).
type LineageKind string

const (
	LineageContinuation LineageKind = "continuation"
	LineageSplit        LineageKind = "split"
	LineageMerge        LineageKind = "merge"
	LineageMinor        LineageKind = "minor"
)

// Lineage relates a group cluster in an older Run to one in a newer Run.
type Lineage struct {
	FromRunID          string
	ToRunID            string
	FromClusterLocalID int
	ToClusterLocalID   int
	OverlapCount       int
	PctFrom            float64
	PctTo              float64
	Kind               LineageKind
}

// VoterVote is one voter's decoded opinion on one item within a Run,
// persisted so the Query API can answer pairwise similarity without
// rebuilding the ephemeral vote matrix (spec.md §4.5, §7).
type VoterVote struct {
	RunID string
	Voter voter.Identity
	Item  string
	Vote  vote.Opinion
}

// RunData bundles every dependent row produced by one pipeline execution,
// written together under PublishRun's stage-then-swap (spec.md §4.6).
type RunData struct {
	Projections []Projection
	Clusters    []Cluster
	Memberships []Membership
	Patterns    []ClusterVotingPattern
	VoterVotes  []VoterVote
}
