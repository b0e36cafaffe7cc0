// Package metrics computes the per-cluster and per-voter-pair measures of
// spec.md §4.5: consensus (opinion-entropy based), per-(cluster, item)
// voting patterns, pairwise voter similarity, and the silhouette
// coefficient used by package cluster to choose a group count.
package metrics
