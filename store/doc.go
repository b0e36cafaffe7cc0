// Package store defines the persisted entities of spec.md §3 — Run,
// Projection, Cluster, Membership, ClusterVotingPattern, and Lineage —
// and the Store interface the Run Coordinator (package run) publishes
// through. MemoryStore is a reference in-process implementation used by
// tests and by deployments that do not need durability across restarts.
package store
