package store

import "github.com/cockroachdb/errors"

var (
	// ErrRunNotFound is returned when a run id has no matching row.
	ErrRunNotFound = errors.New("store: run not found")
	// ErrRunNotRunning is returned when PublishRun or FailRun targets a
	// run that is not currently in the running state.
	ErrRunNotRunning = errors.New("store: run is not running")
	// ErrNoCompletedRun is returned by queries with no completed run to
	// answer against.
	ErrNoCompletedRun = errors.New("store: no completed run exists")
	// ErrMembershipNotFound is returned when a voter has no membership
	// row of the requested cluster type in a run.
	ErrMembershipNotFound = errors.New("store: membership not found")
)
