// Package run implements the Run Coordinator (C7 of spec.md §2): it
// acquires a single-leader lease, drives the Matrix Builder, Sparse PCA,
// Base Clusterer, Group Clusterer, and Metrics components in sequence,
// and atomically publishes the result as a completed Run. On any
// component failure it rolls the Run back to failed with no partial
// dependent rows (spec.md §4.6, §7).
package run
