package run

import (
	"context"
	"math/rand"
	"time"

	cockroacherrors "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/opinionmap/voteclust/cluster"
	"github.com/opinionmap/voteclust/config"
	"github.com/opinionmap/voteclust/lineage"
	"github.com/opinionmap/voteclust/naming"
	"github.com/opinionmap/voteclust/projection"
	"github.com/opinionmap/voteclust/store"
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/voter"
	"github.com/opinionmap/voteclust/votematrix"
)

// Coordinator is the Run Coordinator (C7): it serializes pipeline
// executions behind a Lease, drives C2 through C6, and publishes or
// rolls back a single Run atomically.
type Coordinator struct {
	VoteStore vote.Store
	Store     store.Store
	Lease     *Lease
	Metrics   *Metrics
	Logger    *zap.Logger
	Naming    naming.Hook
	Now       func() time.Time
}

// New builds a Coordinator, filling unset fields with no-op defaults.
func New(voteStore vote.Store, st store.Store, leaseTTL time.Duration) *Coordinator {
	return &Coordinator{
		VoteStore: voteStore,
		Store:     st,
		Lease:     NewLease(leaseTTL),
		Logger:    zap.NewNop(),
		Naming:    naming.NoopHook{},
		Now:       time.Now,
	}
}

// Run executes one pipeline pass under params, or returns AlreadyRunning
// immediately if another pass currently holds the lease (spec.md §4.6).
func (c *Coordinator) Run(ctx context.Context, params config.Parameters) (*store.Run, error) {
	if !c.Lease.TryAcquire() {
		return nil, wrapKind(KindAlreadyRunning, ErrAlreadyRunning)
	}
	defer c.Lease.Release()

	runCtx, cancel := c.Lease.Bound(ctx)
	defer cancel()

	start := time.Now()
	seed := params.Seed
	if seed == 0 {
		seed = c.now().UnixNano()
	}

	runRow, err := c.Store.BeginRun(runCtx, store.Parameters{
		WindowDays:       params.WindowDays,
		MinVoters:        params.MinVoters,
		MinVotesPerVoter: params.MinVotesPerVoter,
		NeutralEpsilon:   params.NeutralEpsilon,
		KGroupMin:        params.GroupKMin,
		KGroupMax:        params.GroupKMax,
	})
	if err != nil {
		return nil, wrapKind(KindInternal, cockroacherrors.Wrap(err, "begin run"))
	}

	logger := c.Logger.With(zap.String("run_id", runRow.ID))
	logger.Info("run started", zap.Int("window_days", params.WindowDays))

	result, err := c.execute(runCtx, runRow.ID, params, seed, logger)
	if err != nil {
		var kind Kind
		var asErr *Error
		if cockroacherrors.As(err, &asErr) {
			kind = asErr.Kind
		} else {
			kind = KindInternal
		}

		reason := err.Error()
		if failErr := c.Store.FailRun(runCtx, runRow.ID, reason); failErr != nil {
			logger.Error("failed to record run failure", zap.Error(failErr))
		}
		if c.Metrics != nil {
			c.Metrics.observeFailed(kind)
		}
		logger.Warn("run failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	published, err := c.Store.PublishRun(runCtx, runRow.ID, result.data, result.aggregates)
	if err != nil {
		if failErr := c.Store.FailRun(runCtx, runRow.ID, err.Error()); failErr != nil {
			logger.Error("failed to record publish failure", zap.Error(failErr))
		}
		if c.Metrics != nil {
			c.Metrics.observeFailed(KindWriteConflict)
		}
		return nil, wrapKind(KindWriteConflict, err)
	}

	ms := time.Since(start).Milliseconds()
	if c.Metrics != nil {
		c.Metrics.observeCompleted(ms, result.aggregates.Silhouette)
	}
	logger.Info("run completed",
		zap.Int64("computation_ms", ms),
		zap.Int("n_groups", result.aggregates.NGroups),
		zap.Float64("silhouette", result.aggregates.Silhouette))

	c.fireNamingHooks(runCtx, published.ID, result.groupClusters, logger)
	c.computeLineage(runCtx, published, logger)

	return published, nil
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

type pipelineResult struct {
	data           store.RunData
	aggregates     store.RunAggregates
	groupClusters  []store.Cluster
}

func (c *Coordinator) execute(ctx context.Context, runID string, params config.Parameters, seed int64, logger *zap.Logger) (*pipelineResult, error) {
	matrix, err := votematrix.Build(ctx, c.VoteStore, votematrix.Filter{
		Now:              c.now(),
		WindowDays:       params.WindowDays,
		MinVoters:        params.MinVoters,
		MinVotesPerVoter: params.MinVotesPerVoter,
		Epsilon:          params.NeutralEpsilon,
	})
	if err != nil {
		if cockroacherrors.Is(err, votematrix.ErrInsufficientVoters) {
			return nil, wrapKind(KindInsufficientVoters, err)
		}
		return nil, wrapKind(KindStoreUnavailable, err)
	}

	proj, err := computeProjectionWithRetry(matrix, params.NeutralEpsilon, logger)
	if err != nil {
		return nil, wrapKind(KindNumerical, err)
	}

	weights := make([]float64, matrix.NVoters())
	for i, n := range matrix.RowNNZ {
		weights[i] = float64(n)
	}

	base, err := cluster.BaseCluster(proj.Coordinates, weights, seed)
	if err != nil {
		return nil, wrapKind(KindInternal, err)
	}

	group, err := cluster.GroupCluster(proj.Coordinates, weights, seed)
	if err != nil {
		return nil, wrapKind(KindInternal, err)
	}

	baseToGroup := assignGroupsToBase(base.Labels, group.Labels, len(base.Centroids))

	itemNames := make([]string, matrix.NItems())
	for item, idx := range matrix.ColIndex {
		itemNames[idx] = item
	}
	rowToVoter := make([]voter.Identity, matrix.NVoters())
	for id, row := range matrix.RowIndex {
		rowToVoter[row] = id
	}

	data, groupClusters, err := buildRunData(runID, matrix, itemNames, rowToVoter, proj, base, group, baseToGroup, params.NeutralEpsilon)
	if err != nil {
		return nil, wrapKind(KindInternal, err)
	}

	return &pipelineResult{
		data: data,
		aggregates: store.RunAggregates{
			NVoters:       matrix.NVoters(),
			NItems:        matrix.NItems(),
			NBaseClusters: len(base.Centroids),
			NGroups:       group.K,
			Silhouette:    group.Silhouette,
		},
		groupClusters: groupClusters,
	}, nil
}

func computeProjectionWithRetry(m *votematrix.Matrix, epsilon float64, logger *zap.Logger) (*projection.Result, error) {
	result, err := projection.Compute(m, epsilon)
	if err == nil {
		return result, nil
	}
	if !cockroacherrors.Is(err, projection.ErrNumerical) {
		return nil, err
	}

	logger.Warn("projection failed to converge, retrying once", zap.Error(err))
	time.Sleep(jitter())
	return projection.Compute(m, epsilon)
}

func jitter() time.Duration {
	return time.Duration(50+rand.Intn(100)) * time.Millisecond
}

func (c *Coordinator) fireNamingHooks(ctx context.Context, runID string, groupClusters []store.Cluster, logger *zap.Logger) {
	for _, cl := range groupClusters {
		naming.Invoke(ctx, c.Naming, logger, naming.Request{
			RunID:          runID,
			ClusterLocalID: cl.LocalID,
		}, func(req naming.Request, resp naming.Response) {
			// store.Store has no call for attaching a name to a
			// persisted Cluster row, so the response is dropped here.
		})
	}
}

func (c *Coordinator) computeLineage(ctx context.Context, newRun *store.Run, logger *zap.Logger) {
	prevRun, err := c.Store.PreviousCompletedRun(ctx, newRun.ID)
	if err != nil {
		return
	}

	oldMemberships, err := c.Store.Memberships(ctx, prevRun.ID, store.ClusterGroup)
	if err != nil {
		logger.Warn("lineage: failed to load previous memberships", zap.Error(err))
		return
	}
	newMemberships, err := c.Store.Memberships(ctx, newRun.ID, store.ClusterGroup)
	if err != nil {
		logger.Warn("lineage: failed to load new memberships", zap.Error(err))
		return
	}

	rows := lineage.Compute(prevRun.ID, newRun.ID, oldMemberships, newMemberships)
	if len(rows) == 0 {
		return
	}
	if err := c.Store.SaveLineage(ctx, rows); err != nil {
		logger.Warn("lineage: failed to save", zap.Error(err))
	}
}
