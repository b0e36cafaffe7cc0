// Package voteclust is an opinion-clustering engine for a news-voting
// platform: it turns a sparse voter×item vote stream into a stable,
// interpretable map of voter groupings ("bubbles") plus per-group
// consensus statistics.
//
// The pipeline, leaf to root:
//
//	voter/      — voter identity (registered vs session) and reconciliation
//	vote/       — vote records and the opinion/ε encoding
//	votematrix/ — sparse vote-matrix construction
//	matrix/     — dense numeric engine (centering, covariance, eigen)
//	projection/ — sparsity-aware 2D PCA
//	cluster/    — weighted k-means base clustering + silhouette group selection
//	metrics/    — consensus, per-item voting patterns, similarity, silhouette
//	store/      — immutable Run persistence
//	run/        — the batch job: single-leader lease, orchestration, atomic publish
//	lineage/    — cross-run bubble continuation/split/merge classification
//	query/      — read-only API over the latest completed Run
//	naming/     — fire-and-forget external cluster-naming hook
//	config/     — parameter defaults and YAML loading
//
// cmd/voteclustctl is the operator-facing trigger command described in
// spec.md §6.3.
package voteclust
