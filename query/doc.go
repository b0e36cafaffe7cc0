// Package query implements the read-only Query API (C9 of spec.md §4.8):
// the latest completed Run, a voter's current bubble, a cluster's voting
// patterns, and a window of Lineage sets. Since Runs are immutable once
// completed, the latest-run view is cached by run id; the other queries
// read the Store on every call.
package query
