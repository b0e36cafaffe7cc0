// Package cluster implements the two-level clustering of spec.md §4.3
// and §4.4: a fine base clustering over the 2D projection via weighted
// k-means (C4), and a silhouette-driven, parsimony-biased reduction of
// the voter-level projection into 2–5 interpretable groups (C5).
//
// Determinism: every exported entry point accepts a Seed so that, per
// spec.md §8 invariant 9, re-running the pipeline with the same seed on
// the same snapshot reproduces identical labels.
package cluster
