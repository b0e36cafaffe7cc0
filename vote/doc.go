// Package vote defines the Vote record, the three-way opinion enum, and
// its numeric encoding into the sparse vote matrix (spec.md §3, §4.1):
// positive → +1.0, negative → −1.0, neutral → a small positive sentinel
// ε that keeps an explicit neutral vote from being elided by a sparse
// container's "drop literal zeros" behavior.
package vote
