// Package lineage implements the cross-run bubble classification of
// spec.md §4.7: given the group memberships of two consecutive completed
// runs, it classifies every non-trivial (old group, new group) pair as a
// continuation, split, merge, or minor relationship based on voter-set
// overlap. Group local_ids are not stable across runs, so lineage is the
// only sound way to relate bubbles over time.
package lineage
