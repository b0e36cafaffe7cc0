// Package matrix is the numeric engine underneath the clustering
// pipeline: a small dense linear-algebra surface (construction,
// arithmetic, column statistics, symmetric eigendecomposition) used by
// projection to center and factor the vote matrix.
//
// It is deliberately narrow. Earlier drafts of this package grew from a
// general-purpose graph/adjacency matrix library; this version keeps
// only the operations projection actually calls, ported in the same
// style (sentinel errors, Stage-numbered implementation comments,
// deterministic loop order) but without the adjacency/incidence/graph
// surface that has no role in a voter×item numeric pipeline.
package matrix
