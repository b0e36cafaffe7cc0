package query

import "github.com/opinionmap/voteclust/store"

// RunView is the answer to the "latest run" query: the run summary plus
// its voter projections and group clusters (spec.md §4.8).
type RunView struct {
	Run         *store.Run
	Projections []store.Projection
	Groups      []store.Cluster
}

// LineagePair is one (R, R.next) entry of a lineage window query.
type LineagePair struct {
	FromRun *store.Run
	ToRun   *store.Run
	Rows    []store.Lineage
}
